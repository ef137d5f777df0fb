package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range []OrderStatus{OrderPending, OrderAccepted, OrderOnTheMove, OrderCompleted} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, OrderStatus("cancelled").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestOrderStatus_Before(t *testing.T) {
	assert.True(t, OrderPending.Before(OrderAccepted))
	assert.True(t, OrderAccepted.Before(OrderCompleted))
	assert.False(t, OrderCompleted.Before(OrderOnTheMove))
	assert.False(t, OrderAccepted.Before(OrderAccepted))
}

func TestUser_ViewHidesCredentials(t *testing.T) {
	u := &User{
		BaseModel:    BaseModel{ID: 7},
		FirstName:    "Jules",
		PhoneNumber:  "+15551234567",
		PasswordHash: "hash",
		OTP:          "123456",
		Role:         RoleCustomer,
	}

	v := u.View()
	assert.Zero(t, v.ID)
	assert.Empty(t, v.OTP)
	assert.Equal(t, "Jules", v.FirstName)
	assert.Equal(t, RoleCustomer, v.Role)
}

func TestOrder_Details(t *testing.T) {
	o := &Order{
		BaseModel: BaseModel{ID: 3},
		UserID:    9,
		Total:     12.5,
		Status:    OrderPending,
		User:      &User{BaseModel: BaseModel{ID: 9}, FirstName: "Ann", PasswordHash: "secret"},
	}

	d := o.Details(false)
	require.NotNil(t, d.User)
	assert.Equal(t, uint(9), d.User.ID)
	assert.Nil(t, d.User.CreatedAt)
	assert.NotNil(t, d.Contents)
	assert.Empty(t, d.Contents)

	d = o.Details(true)
	assert.NotNil(t, d.User.CreatedAt)
}
