package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-system/internal/domain/entity"
	"github.com/jhoicas/inventario-system/internal/infrastructure/memory"
)

func TestSeeder_Run_EmptyStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	products := memory.NewProductRepository(store)

	require.NoError(t, NewSeeder(users, products, nil).Run(ctx, DefaultAdmin, true))

	admin, err := users.GetByEmail(ctx, "ADMIN@sistema.com")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, entity.RoleAdministrador, admin.Role)
	assert.True(t, admin.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("Admin123!")))

	list, err := products.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 5)

	low, err := products.ListLowStock(ctx, entity.LowStockThreshold)
	require.NoError(t, err)
	require.Len(t, low, 3)
	assert.Equal(t, 2, low[0].Quantity)
	assert.Equal(t, 3, low[1].Quantity)
	assert.Equal(t, 4, low[2].Quantity)
}

func TestSeeder_Run_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	products := memory.NewProductRepository(store)
	s := NewSeeder(users, products, nil)

	require.NoError(t, s.Run(ctx, DefaultAdmin, true))
	created, err := s.SeedAdmin(ctx, DefaultAdmin)
	require.NoError(t, err)
	assert.False(t, created)

	n, err := s.SeedProducts(ctx, SampleProducts)
	require.NoError(t, err)
	assert.Zero(t, n)

	count, err := products.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestSeeder_SeedAdmin_EmptyEmailUsesDefault(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	s := NewSeeder(users, memory.NewProductRepository(store), nil)

	created, err := s.SeedAdmin(ctx, Admin{})
	require.NoError(t, err)
	assert.True(t, created)

	u, err := users.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "admin@sistema.com", u.Email)
}
