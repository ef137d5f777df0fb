package store

import (
	"context"
	"errors"

	"github.com/example/quickbite/internal/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a unique constraint rejects a write.
var ErrDuplicate = errors.New("duplicate record")

// UserStore is the user directory.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByPhone(ctx context.Context, phoneNumber string) (*models.User, error)
	UpdateUser(ctx context.Context, id uint, fields map[string]interface{}) (*models.User, error)
}

// OrderFilter narrows order lookups. Zero fields are ignored.
type OrderFilter struct {
	ID     uint
	UserID uint
	// Limit and Offset page ListOrders. A zero Limit returns every match.
	Limit  int
	Offset int
}

// OrderStore persists orders together with their lines.
type OrderStore interface {
	// CreateOrder writes the order and its lines atomically. Each line is
	// stamped with the new order's id.
	CreateOrder(ctx context.Context, order *models.Order, lines []models.OrderLine) error
	FindOrder(ctx context.Context, filter OrderFilter) (*models.Order, error)
	// ListOrders returns matching orders, newest id first.
	ListOrders(ctx context.Context, filter OrderFilter) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error)
}

// MenuStore exposes the catalog.
type MenuStore interface {
	ListMenus(ctx context.Context) ([]models.Menu, error)
	CreateMenu(ctx context.Context, menu *models.Menu) error
}

// Store bundles every repository the application uses.
type Store interface {
	UserStore
	OrderStore
	MenuStore
}
