// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"staplewise/internal/domain/entity"
	"staplewise/internal/domain/repository"
	"staplewise/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a repository.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// List returns every account in insertion order.
func (repo *accountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	var accountMs []*model.AccountModel
	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&accountMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountMs))
	for _, accountM := range accountMs {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// FindByEmail retrieves a single account by exact email match.
// Credential reads are pinned to the primary so a login immediately after
// registration never hits a stale replica.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("email = ?", email).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account. The unique email index makes the insert an
// atomic insert-if-absent; a collision maps to repository.ErrDuplicateEmail.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate account id")
	}
	account.ID = id
	account.CreatedAt = time.Now().UTC()

	accountM := fromAccountDomain(account)
	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(err, "failed to create account")
	}

	return nil
}

func toAccountDomain(accountM *model.AccountModel) *entity.Account {
	return &entity.Account{
		ID:           accountM.ID,
		Email:        accountM.Email,
		PasswordHash: accountM.PasswordHash,
		Name:         accountM.Name,
		Phone:        accountM.Phone,
		Role:         entity.Role(accountM.Role),
		CompanyName:  accountM.CompanyName,
		GST:          accountM.GST,
		CreatedAt:    accountM.CreatedAt,
	}
}

func fromAccountDomain(account *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:           account.ID,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		Name:         account.Name,
		Phone:        account.Phone,
		Role:         account.Role.String(),
		CompanyName:  account.CompanyName,
		GST:          account.GST,
		CreatedAt:    account.CreatedAt,
	}
}
