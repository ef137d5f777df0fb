package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/example/quickbite/internal/models"
)

// MemoryStore implements Store in process memory. It backs local runs with
// USE_MEMORY_STORE=true and the HTTP tests.
type MemoryStore struct {
	mu sync.RWMutex

	users    map[uint]*models.User
	orders   map[uint]*models.Order
	lines    map[uint][]models.OrderLine
	menus    []*models.Menu
	userSeq  uint
	orderSeq uint
	lineSeq  uint
	menuSeq  uint
	itemSeq  uint
	failNext error
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:  make(map[uint]*models.User),
		orders: make(map[uint]*models.Order),
		lines:  make(map[uint][]models.OrderLine),
	}
}

// FailNext makes the next write return err. Used to exercise failure paths.
func (m *MemoryStore) FailNext(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNext = err
}

func (m *MemoryStore) takeFailure() error {
	err := m.failNext
	m.failNext = nil
	return err
}

func (m *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.takeFailure(); err != nil {
		return err
	}
	for _, u := range m.users {
		if u.PhoneNumber == user.PhoneNumber {
			return ErrDuplicate
		}
	}

	m.userSeq++
	now := time.Now()
	user.ID = m.userSeq
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Role == "" {
		user.Role = models.RoleCustomer
	}

	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *MemoryStore) FindUserByPhone(_ context.Context, phoneNumber string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.PhoneNumber == phoneNumber {
			found := *u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) UpdateUser(_ context.Context, id uint, fields map[string]interface{}) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.takeFailure(); err != nil {
		return nil, err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}

	for column, value := range fields {
		switch column {
		case "status":
			u.ActivationStatus = value.(bool)
		case "otp":
			u.OTP = value.(string)
		case "password":
			u.PasswordHash = value.(string)
		case "role":
			u.Role = value.(models.Role)
		case "address":
			u.Address = value.(string)
		default:
			return nil, fmt.Errorf("memory store: unsupported user column %q", column)
		}
	}
	u.UpdatedAt = time.Now()

	updated := *u
	return &updated, nil
}

func (m *MemoryStore) CreateOrder(_ context.Context, order *models.Order, lines []models.OrderLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.takeFailure(); err != nil {
		return err
	}

	m.orderSeq++
	now := time.Now()
	order.ID = m.orderSeq
	order.CreatedAt = now
	order.UpdatedAt = now
	order.Lines = nil

	stored := make([]models.OrderLine, len(lines))
	for i := range lines {
		m.lineSeq++
		lines[i].ID = m.lineSeq
		lines[i].OrderID = order.ID
		lines[i].CreatedAt = now
		lines[i].UpdatedAt = now
		stored[i] = lines[i]
	}

	o := *order
	m.orders[order.ID] = &o
	m.lines[order.ID] = stored
	return nil
}

func (m *MemoryStore) FindOrder(_ context.Context, filter OrderFilter) (*models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	o, ok := m.orders[filter.ID]
	if !ok || (filter.UserID != 0 && o.UserID != filter.UserID) {
		return nil, ErrNotFound
	}
	return m.hydrate(o), nil
}

func (m *MemoryStore) ListOrders(_ context.Context, filter OrderFilter) ([]models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	orders := make([]models.Order, 0, len(m.orders))
	for _, o := range m.orders {
		if filter.UserID != 0 && o.UserID != filter.UserID {
			continue
		}
		orders = append(orders, *m.hydrate(o))
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID > orders[j].ID })

	if filter.Limit > 0 {
		offset := filter.Offset
		if offset < 0 {
			offset = 0
		}
		if offset >= len(orders) {
			return []models.Order{}, nil
		}
		end := len(orders)
		if filter.Limit < end-offset {
			end = offset + filter.Limit
		}
		orders = orders[offset:end]
	}
	return orders, nil
}

func (m *MemoryStore) UpdateOrderStatus(_ context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.takeFailure(); err != nil {
		return nil, err
	}
	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now()

	updated := *o
	return &updated, nil
}

// LineCount returns how many lines are stored for an order.
func (m *MemoryStore) LineCount(orderID uint) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.lines[orderID])
}

func (m *MemoryStore) ListMenus(_ context.Context) ([]models.Menu, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	menus := make([]models.Menu, 0, len(m.menus))
	for _, menu := range m.menus {
		c := *menu
		c.Items = append([]models.Item(nil), menu.Items...)
		menus = append(menus, c)
	}
	return menus, nil
}

func (m *MemoryStore) CreateMenu(_ context.Context, menu *models.Menu) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.menuSeq++
	menu.ID = m.menuSeq
	for i := range menu.Items {
		m.itemSeq++
		menu.Items[i].ID = m.itemSeq
		menu.Items[i].MenuID = menu.ID
	}

	stored := *menu
	stored.Items = append([]models.Item(nil), menu.Items...)
	m.menus = append(m.menus, &stored)
	return nil
}

// hydrate copies an order with its lines and owner. Caller holds the lock.
func (m *MemoryStore) hydrate(o *models.Order) *models.Order {
	c := *o
	c.Lines = append([]models.OrderLine(nil), m.lines[o.ID]...)
	if u, ok := m.users[o.UserID]; ok {
		owner := *u
		c.User = &owner
	}
	return &c
}
