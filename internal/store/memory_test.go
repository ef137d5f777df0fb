package store

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/quickbite/internal/models"
)

func TestMemoryStore_Users(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	u := &models.User{FirstName: "Jules", PhoneNumber: "+15551234567", PasswordHash: "h", OTP: "123456"}
	require.NoError(t, s.CreateUser(ctx, u))
	assert.Equal(t, uint(1), u.ID)
	assert.Equal(t, models.RoleCustomer, u.Role)

	err := s.CreateUser(ctx, &models.User{PhoneNumber: "+15551234567"})
	assert.ErrorIs(t, err, ErrDuplicate)

	found, err := s.FindUserByPhone(ctx, "+15551234567")
	require.NoError(t, err)
	assert.Equal(t, "Jules", found.FirstName)

	_, err = s.FindUserByPhone(ctx, "+10000000000")
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := s.UpdateUser(ctx, u.ID, map[string]interface{}{"status": true, "otp": "654321"})
	require.NoError(t, err)
	assert.True(t, updated.ActivationStatus)
	assert.Equal(t, "654321", updated.OTP)

	_, err = s.UpdateUser(ctx, 99, map[string]interface{}{"status": true})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_OrdersNewestFirstAndScoped(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	alice := &models.User{PhoneNumber: "+15550000001"}
	bob := &models.User{PhoneNumber: "+15550000002"}
	require.NoError(t, s.CreateUser(ctx, alice))
	require.NoError(t, s.CreateUser(ctx, bob))

	for _, owner := range []uint{alice.ID, bob.ID, alice.ID} {
		o := &models.Order{UserID: owner, Total: 10, Status: models.OrderPending}
		lines := []models.OrderLine{{ItemID: 1, ItemName: "Burger", Cost: 5, Quantity: 2}}
		require.NoError(t, s.CreateOrder(ctx, o, lines))
		assert.Equal(t, o.ID, lines[0].OrderID)
		assert.Nil(t, o.Lines)
	}

	all, err := s.ListOrders(ctx, OrderFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, uint(3), all[0].ID)
	assert.Equal(t, uint(1), all[2].ID)
	require.NotNil(t, all[0].User)
	assert.Len(t, all[0].Lines, 1)

	mine, err := s.ListOrders(ctx, OrderFilter{UserID: alice.ID})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	_, err = s.FindOrder(ctx, OrderFilter{ID: 2, UserID: alice.ID})
	assert.ErrorIs(t, err, ErrNotFound)

	o, err := s.FindOrder(ctx, OrderFilter{ID: 2})
	require.NoError(t, err)
	assert.Equal(t, bob.ID, o.UserID)

	page, err := s.ListOrders(ctx, OrderFilter{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, uint(2), page[0].ID)

	past, err := s.ListOrders(ctx, OrderFilter{Limit: 2, Offset: 5})
	require.NoError(t, err)
	assert.Empty(t, past)

	far, err := s.ListOrders(ctx, OrderFilter{Limit: 100, Offset: math.MaxInt - 100})
	require.NoError(t, err)
	assert.Empty(t, far)

	wide, err := s.ListOrders(ctx, OrderFilter{Limit: math.MaxInt, Offset: 1})
	require.NoError(t, err)
	assert.Len(t, wide, 2)

	negative, err := s.ListOrders(ctx, OrderFilter{Limit: 2, Offset: -4})
	require.NoError(t, err)
	require.Len(t, negative, 2)
	assert.Equal(t, uint(3), negative[0].ID)
}

func TestMemoryStore_FailNext(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	boom := errors.New("boom")

	s.FailNext(boom)
	err := s.CreateOrder(ctx, &models.Order{UserID: 1}, []models.OrderLine{{ItemID: 1}})
	assert.ErrorIs(t, err, boom)

	all, err := s.ListOrders(ctx, OrderFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMemoryStore_Menus(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	menus, err := s.ListMenus(ctx)
	require.NoError(t, err)
	assert.Empty(t, menus)

	require.NoError(t, s.CreateMenu(ctx, &models.Menu{
		Name:  "Drinks",
		Items: []models.Item{{Name: "Diet Coke", Cost: 1.5}, {Name: "Cappuccino", Cost: 1.5}},
	}))

	menus, err = s.ListMenus(ctx)
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Len(t, menus[0].Items, 2)
	assert.Equal(t, menus[0].ID, menus[0].Items[1].MenuID)
}
