package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"staplewise/config"
	"staplewise/internal/domain/entity"
	"staplewise/internal/domain/repository"
	"staplewise/internal/domain/service"
	"staplewise/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fakeAccountRepo is an in-memory AccountRepository for exercising the
// services without a database.
type fakeAccountRepo struct {
	accounts []*entity.Account
	// createErr forces Create to fail, simulating a storage fault.
	createErr error
}

func (r *fakeAccountRepo) List(_ context.Context) ([]*entity.Account, error) {
	out := make([]*entity.Account, len(r.accounts))
	copy(out, r.accounts)

	return out, nil
}

func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	for _, account := range r.accounts {
		if account.Email == email {
			return account, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	for _, account := range r.accounts {
		if account.ID == id {
			return account, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.accounts {
		if existing.Email == account.Email {
			return repository.ErrDuplicateEmail
		}
	}

	account.ID = uuid.Must(uuid.NewV7())
	account.CreatedAt = time.Now().UTC()
	r.accounts = append(r.accounts, account)

	return nil
}

type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) List(_ context.Context, _ entity.ProductFilter) ([]*entity.Product, error) {
	out := make([]*entity.Product, len(r.products))
	copy(out, r.products)

	return out, nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	for _, product := range r.products {
		if product.ID == id {
			return product, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	product.ID = uuid.Must(uuid.NewV7())
	product.CreatedAt = time.Now().UTC()
	r.products = append(r.products, product)

	return nil
}

type fakeEnquiryRepo struct {
	enquiries []*entity.Enquiry
}

func (r *fakeEnquiryRepo) List(_ context.Context) ([]*entity.Enquiry, error) {
	out := make([]*entity.Enquiry, len(r.enquiries))
	copy(out, r.enquiries)

	return out, nil
}

func (r *fakeEnquiryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Enquiry, error) {
	for _, enquiry := range r.enquiries {
		if enquiry.ID == id {
			copied := *enquiry

			return &copied, nil
		}
	}

	return nil, repository.ErrEnquiryNotFound
}

func (r *fakeEnquiryRepo) Create(_ context.Context, enquiry *entity.Enquiry) error {
	enquiry.ID = uuid.Must(uuid.NewV7())
	enquiry.Status = entity.EnquiryPending
	enquiry.CreatedAt = time.Now().UTC()
	r.enquiries = append(r.enquiries, enquiry)

	return nil
}

func (r *fakeEnquiryRepo) Update(_ context.Context, enquiry *entity.Enquiry) error {
	for i, existing := range r.enquiries {
		if existing.ID == enquiry.ID {
			copied := *enquiry
			r.enquiries[i] = &copied

			return nil
		}
	}

	return repository.ErrEnquiryNotFound
}

// stubHasher avoids bcrypt cost in tests while keeping the hash distinct from
// the plaintext.
type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (stubHasher) Check(password, hash string) bool { return hash == "hashed:"+password }

func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	tokenService, err := auth.NewJWTService(&config.Config{
		SecretKey: config.SecretKeyConfig{Token: "test_token_secret"},
	})
	require.NoError(t, err)

	return tokenService
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
