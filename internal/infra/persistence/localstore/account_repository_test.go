package localstore

import (
	"context"
	"testing"

	"staplewise/internal/domain/entity"
	"staplewise/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccount(email string) *entity.Account {
	return &entity.Account{
		Email:        email,
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
		Name:         "Test Person",
		Phone:        "+919876543212",
		Role:         entity.RoleBuyer,
		CompanyName:  "ABC Foods",
	}
}

func TestAccountRepository_CreateAndFind(t *testing.T) {
	repo, err := NewAccountRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	account := newTestAccount("buyer@example.com")
	require.NoError(t, repo.Create(ctx, account))
	assert.NotZero(t, account.ID)
	assert.False(t, account.CreatedAt.IsZero())

	byEmail, err := repo.FindByEmail(ctx, "buyer@example.com")
	require.NoError(t, err)
	assert.Equal(t, account.ID, byEmail.ID)
	assert.Equal(t, entity.RoleBuyer, byEmail.Role)

	byID, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", byID.Email)
}

func TestAccountRepository_FindMisses(t *testing.T) {
	repo, err := NewAccountRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = repo.FindByEmail(ctx, "nonexistent@x.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	created := newTestAccount("someone@example.com")
	require.NoError(t, repo.Create(ctx, created))

	// Email matching is exact and case-sensitive.
	_, err = repo.FindByEmail(ctx, "SOMEONE@example.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_DuplicateEmail(t *testing.T) {
	repo, err := NewAccountRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestAccount("buyer@example.com")))

	err = repo.Create(ctx, newTestAccount("buyer@example.com"))
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	// The colliding insert must not have mutated the collection.
	accounts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestAccountRepository_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewAccountRepository(dir)
	require.NoError(t, err)
	account := newTestAccount("seller@example.com")
	account.Role = entity.RoleSeller
	account.GST = "GST123456789"
	require.NoError(t, repo.Create(ctx, account))

	// A fresh repository over the same directory sees the same blob.
	reopened, err := NewAccountRepository(dir)
	require.NoError(t, err)

	found, err := reopened.FindByEmail(ctx, "seller@example.com")
	require.NoError(t, err)
	assert.Equal(t, account.ID, found.ID)
	assert.Equal(t, entity.RoleSeller, found.Role)
	assert.Equal(t, "GST123456789", found.GST)
}

func TestAccountRepository_ListInsertionOrder(t *testing.T) {
	repo, err := NewAccountRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	emails := []string{"a@example.com", "b@example.com", "c@example.com"}
	for _, email := range emails {
		require.NoError(t, repo.Create(ctx, newTestAccount(email)))
	}

	accounts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	for i, email := range emails {
		assert.Equal(t, email, accounts[i].Email)
	}
}
