package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/quickbite/internal/models"
	"github.com/example/quickbite/internal/utils"
)

func TestSeedAdmin(t *testing.T) {
	m := NewMemoryStore()
	seeder := NewSeeder(m, zap.NewNop())
	ctx := context.Background()

	assert.ErrorIs(t, seeder.SeedAdmin(ctx, "", "pw"), ErrMissingAdminCredentials)

	require.NoError(t, seeder.SeedAdmin(ctx, "+250788000000", "admin!pw"))
	admin, err := m.FindUserByPhone(ctx, "+250788000000")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, admin.ActivationStatus)
	assert.True(t, utils.CheckPassword(admin.PasswordHash, "admin!pw"))

	// running twice is a no-op
	require.NoError(t, seeder.SeedAdmin(ctx, "+250788000000", "admin!pw"))
}

func TestSeedAdmin_PromotesExistingUser(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, m.CreateUser(ctx, &models.User{PhoneNumber: "+250788000001", PasswordHash: "x"}))

	require.NoError(t, NewSeeder(m, zap.NewNop()).SeedAdmin(ctx, "+250788000001", "admin!pw"))

	u, err := m.FindUserByPhone(ctx, "+250788000001")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, u.Role)
	assert.True(t, u.ActivationStatus)
}

func TestSeedMenus(t *testing.T) {
	m := NewMemoryStore()
	seeder := NewSeeder(m, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, seeder.SeedMenus(ctx))
	require.NoError(t, seeder.SeedMenus(ctx))

	menus, err := m.ListMenus(ctx)
	require.NoError(t, err)
	require.Len(t, menus, 3)
	assert.Equal(t, "Breakfast", menus[0].Name)
	assert.Len(t, menus[1].Items, 2)
	assert.Equal(t, "Cappucinno", menus[2].Items[1].Name)
	assert.NotZero(t, menus[2].Items[1].MenuID)
}
