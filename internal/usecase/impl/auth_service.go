// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "staplewise/internal/delivery/context"
	"staplewise/internal/domain/entity"
	domainerrors "staplewise/internal/domain/errors"
	"staplewise/internal/domain/repository"
	"staplewise/internal/domain/service"
	"staplewise/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email), slog.Any("role", input.Role))

	if !input.Role.IsValid() {
		srv.log(ctx).Warn("Registration with unknown role", slog.String("role", input.Role.String()))

		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}

	// Pre-check for a friendlier failure; the store's unique email constraint
	// still backstops a race between two concurrent registrations.
	_, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Warn("Registration with taken email", slog.String("email", input.Email))

		return nil, domainerrors.ErrDuplicateAccount.WrapMessage("registration failed")
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	account := &entity.Account{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Name:         input.Name,
		Phone:        input.Phone,
		Role:         input.Role,
		CompanyName:  input.CompanyName,
		GST:          input.GST,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.log(ctx).Warn("Registration lost insert race", slog.String("email", input.Email))

			return nil, domainerrors.ErrDuplicateAccount.WrapMessage("registration failed")
		}

		return nil, errors.Wrap(err, "failed to create account during registration")
	}

	token, err := srv.tokenService.Generate(account.ID, account.Email, account.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token after registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", account.ID), slog.Any("role", account.Role))

	return &usecase.AuthOutput{
		Profile: account.Profile(),
		Token:   token,
	}, nil
}

// Login orchestrates the account login process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		// An unknown email answers exactly like a wrong password so
		// callers cannot probe which addresses are registered.
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Generate(account.ID, account.Email, account.Role)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Debug("Logged in successfully", slog.Any("accountID", account.ID))

	return &usecase.AuthOutput{
		Profile: account.Profile(),
		Token:   token,
	}, nil
}

// VerifyToken resolves a bearer token back to the live account profile.
func (srv *authService) VerifyToken(ctx context.Context, token string) (*entity.Profile, error) {
	claims, err := srv.tokenService.Verify(token)
	if err != nil {
		srv.log(ctx).Debug("Token verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidToken.WrapMessage("token verification failed")
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.AccountID)
	if err != nil {
		// A well-signed token for a vanished account is still a dead session.
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Token references missing account", slog.Any("accountID", claims.AccountID))

			return nil, domainerrors.ErrInvalidToken.WrapMessage("token references missing account")
		}

		return nil, errors.Wrap(err, "failed to load account for token")
	}

	return account.Profile(), nil
}

// GetAccountByID returns the sanitized profile for the given account ID.
func (srv *authService) GetAccountByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("account lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return account.Profile(), nil
}
