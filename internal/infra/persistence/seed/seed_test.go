package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"staplewise/internal/domain/entity"
	"staplewise/internal/infra/persistence/localstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Check(password, hash string) bool { return hash == "hashed:"+password }

func newTestSeeder(t *testing.T, dir string) *Seeder {
	t.Helper()

	accounts, err := localstore.NewAccountRepository(dir)
	require.NoError(t, err)
	products, err := localstore.NewProductRepository(dir)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return New(accounts, products, plainHasher{}, logger)
}

func TestSeeder_Run_CreatesDemoData(t *testing.T) {
	dir := t.TempDir()
	seeder := newTestSeeder(t, dir)
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx))

	accounts, err := seeder.accounts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 4)

	roles := make(map[entity.Role]string)
	for _, account := range accounts {
		roles[account.Role] = account.Email
		assert.True(t, plainHasher{}.Check("password123", account.PasswordHash))
	}
	assert.Equal(t, "admin@staplewise.com", roles[entity.RoleAdmin])
	assert.Equal(t, "sales@staplewise.com", roles[entity.RoleSales])
	assert.Equal(t, "buyer@example.com", roles[entity.RoleBuyer])
	assert.Equal(t, "seller@example.com", roles[entity.RoleSeller])

	products, err := seeder.products.List(ctx, entity.ProductFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, products)

	seller, err := seeder.accounts.FindByEmail(ctx, "seller@example.com")
	require.NoError(t, err)
	for _, product := range products {
		assert.Equal(t, seller.ID, product.SellerID)
	}
}

func TestSeeder_Run_Idempotent(t *testing.T) {
	dir := t.TempDir()
	seeder := newTestSeeder(t, dir)
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx))

	first, err := seeder.accounts.List(ctx)
	require.NoError(t, err)

	require.NoError(t, seeder.Run(ctx))
	require.NoError(t, seeder.Run(ctx))

	accounts, err := seeder.accounts.List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, len(first))

	// Existing accounts keep their original IDs and hashes.
	for i, account := range accounts {
		assert.Equal(t, first[i].ID, account.ID)
		assert.Equal(t, first[i].PasswordHash, account.PasswordHash)
	}

	products, err := seeder.products.List(ctx, entity.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, products, 4)
}
