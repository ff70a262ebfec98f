package main

import (
	"context"
	"log/slog"
	"os"

	"staplewise/config"
	"staplewise/internal/delivery"
	"staplewise/internal/delivery/http"
	"staplewise/internal/delivery/http/middleware"
	"staplewise/internal/delivery/http/router/handler"
	"staplewise/internal/domain/lifecycle"
	"staplewise/internal/domain/repository"
	"staplewise/internal/domain/service"
	"staplewise/internal/infra/auth"
	logs "staplewise/internal/infra/log"
	"staplewise/internal/infra/persistence/localstore"
	"staplewise/internal/infra/persistence/postgres"
	"staplewise/internal/infra/persistence/seed"
	"staplewise/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultStorePath = "./data"

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedDemoData,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

type repoParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type repoSet struct {
	fx.Out

	Accounts  repository.AccountRepository
	Products  repository.ProductRepository
	Enquiries repository.EnquiryRepository
}

// newRepositories wires the persistence backend selected by store.driver:
// PostgreSQL for deployments, JSON blob files for local demo runs.
func newRepositories(params repoParams) (repoSet, error) {
	if params.Config.StoreDriver() == config.StoreDriverFile {
		return newFileRepositories(params.Config)
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return repoSet{}, errors.Wrap(err, "failed to create postgres store")
	}

	return repoSet{
		Accounts:  postgres.NewAccountRepository(db),
		Products:  postgres.NewProductRepository(db),
		Enquiries: postgres.NewEnquiryRepository(db),
	}, nil
}

func newFileRepositories(cfg *config.Config) (repoSet, error) {
	dir := defaultStorePath
	if cfg.Store != nil && cfg.Store.Path != "" {
		dir = cfg.Store.Path
	}

	accounts, err := localstore.NewAccountRepository(dir)
	if err != nil {
		return repoSet{}, errors.Wrap(err, "failed to open account store")
	}
	products, err := localstore.NewProductRepository(dir)
	if err != nil {
		return repoSet{}, errors.Wrap(err, "failed to open product store")
	}
	enquiries, err := localstore.NewEnquiryRepository(dir)
	if err != nil {
		return repoSet{}, errors.Wrap(err, "failed to open enquiry store")
	}

	return repoSet{
		Accounts:  accounts,
		Products:  products,
		Enquiries: enquiries,
	}, nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newRepositories,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCatalogService,
			impl.NewEnquiryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCatalogHandler,
			handler.NewEnquiryHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

type seedParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Accounts repository.AccountRepository
	Products repository.ProductRepository
	Hasher   service.PasswordHasher
}

// seedDemoData registers demo seeding as a startup hook so it runs after the
// store backend is reachable and migrated.
func seedDemoData(params seedParams) {
	if params.Config.Seed == nil || !params.Config.Seed.Demo {
		return
	}

	seeder := seed.New(params.Accounts, params.Products, params.Hasher, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return seeder.Run(ctx)
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
