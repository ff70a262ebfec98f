package localstore

import (
	"context"
	"time"

	"staplewise/internal/domain/entity"
	"staplewise/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// accountRepository implements repository.AccountRepository on a JSON blob file.
type accountRepository struct {
	accounts *collection[*entity.Account]
}

// NewAccountRepository is the constructor for accountRepository.
// Accounts live in <dir>/accounts.json as one contiguous collection.
func NewAccountRepository(dir string) (repository.AccountRepository, error) {
	accounts, err := newCollection[*entity.Account](dir, "accounts")
	if err != nil {
		return nil, err
	}

	return &accountRepository{accounts: accounts}, nil
}

// List returns every account in insertion order.
func (repo *accountRepository) List(_ context.Context) ([]*entity.Account, error) {
	accounts, err := repo.accounts.load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// FindByEmail retrieves the first account whose email matches exactly.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	accounts, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, account := range accounts {
		if account.Email == email {
			return account, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	accounts, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, account := range accounts {
		if account.ID == id {
			return account, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

// Create generates the account's ID and CreatedAt and appends it to the blob.
// UUIDv7 combines a timestamp with random bits, so IDs are collision-resistant
// across reloads without coordinating with existing entries.
func (repo *accountRepository) Create(_ context.Context, account *entity.Account) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate account id")
	}
	account.ID = id
	account.CreatedAt = time.Now().UTC()

	err = repo.accounts.update(func(accounts []*entity.Account) ([]*entity.Account, error) {
		for _, existing := range accounts {
			if existing.Email == account.Email {
				return nil, repository.ErrDuplicateEmail
			}
		}

		return append(accounts, account), nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to create account")
	}

	return nil
}
