// Package seed provisions the demo dataset: four well-known accounts and a
// small cashew catalog. Seeding is idempotent, so repeated startups against
// the same store never duplicate rows.
package seed

import (
	"context"
	"log/slog"

	"staplewise/internal/domain/entity"
	"staplewise/internal/domain/repository"
	"staplewise/internal/domain/service"

	"github.com/pkg/errors"
)

// demoPassword is shared by all demo accounts. It is hashed at seed time, so
// the stored blobs still never carry a recoverable password.
const demoPassword = "password123"

type demoAccount struct {
	email       string
	name        string
	phone       string
	role        entity.Role
	companyName string
	gst         string
}

var demoAccounts = []demoAccount{
	{
		email: "admin@staplewise.com",
		name:  "StapleWise Admin",
		phone: "+91 9876543210",
		role:  entity.RoleAdmin,
	},
	{
		email: "sales@staplewise.com",
		name:  "Sales Team",
		phone: "+91 9876543211",
		role:  entity.RoleSales,
	},
	{
		email:       "buyer@example.com",
		name:        "John Buyer",
		phone:       "+91 9876543212",
		role:        entity.RoleBuyer,
		companyName: "ABC Foods",
	},
	{
		email:       "seller@example.com",
		name:        "Jane Seller",
		phone:       "+91 9876543213",
		role:        entity.RoleSeller,
		companyName: "XYZ Cashews",
		gst:         "GST123456789",
	},
}

// Seeder writes the demo accounts and catalog into whichever store backend
// was wired in.
type Seeder struct {
	accounts repository.AccountRepository
	products repository.ProductRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// New is the constructor for Seeder.
func New(
	accounts repository.AccountRepository,
	products repository.ProductRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		accounts: accounts,
		products: products,
		hasher:   hasher,
		logger:   logger,
	}
}

// Run seeds accounts first, then the catalog, so product listings can point
// at the demo seller. Accounts that already exist are left untouched.
func (s *Seeder) Run(ctx context.Context) error {
	seller, err := s.seedAccounts(ctx)
	if err != nil {
		return err
	}

	return s.seedProducts(ctx, seller)
}

func (s *Seeder) seedAccounts(ctx context.Context) (*entity.Account, error) {
	var seller *entity.Account
	for _, demo := range demoAccounts {
		existing, err := s.accounts.FindByEmail(ctx, demo.email)
		switch {
		case err == nil:
			if demo.role == entity.RoleSeller {
				seller = existing
			}

			continue
		case !errors.Is(err, repository.ErrAccountNotFound):
			return nil, errors.Wrap(err, "failed to check demo account")
		}

		hash, err := s.hasher.Hash(demoPassword)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash demo password")
		}

		account := &entity.Account{
			Email:        demo.email,
			PasswordHash: hash,
			Name:         demo.name,
			Phone:        demo.phone,
			Role:         demo.role,
			CompanyName:  demo.companyName,
			GST:          demo.gst,
		}
		if err := s.accounts.Create(ctx, account); err != nil {
			// Another instance seeded the same account between our check and
			// the insert. The row exists, which is all seeding guarantees.
			if errors.Is(err, repository.ErrDuplicateEmail) {
				continue
			}

			return nil, errors.Wrap(err, "failed to create demo account")
		}

		s.logger.LogAttrs(ctx, slog.LevelInfo, "Seeded demo account",
			slog.String("email", account.Email),
			slog.String("role", account.Role.String()),
		)

		if demo.role == entity.RoleSeller {
			seller = account
		}
	}

	return seller, nil
}

func (s *Seeder) seedProducts(ctx context.Context, seller *entity.Account) error {
	existing, err := s.products.List(ctx, entity.ProductFilter{})
	if err != nil {
		return errors.Wrap(err, "failed to check catalog")
	}
	if len(existing) > 0 {
		return nil
	}
	if seller == nil {
		// No demo seller to attach listings to; leave the catalog empty.
		return nil
	}

	products := demoProducts(seller.ID)
	for _, product := range products {
		if err := s.products.Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create demo product")
		}
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "Seeded demo catalog",
		slog.Int("count", len(products)),
	)

	return nil
}
