package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/quickbite/internal/models"
)

// DatabaseStore implements Store on top of gorm.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore wraps an open gorm connection.
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

func (s *DatabaseStore) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *DatabaseStore) FindUserByPhone(ctx context.Context, phoneNumber string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("phone_number = ?", phoneNumber).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *DatabaseStore) UpdateUser(ctx context.Context, id uint, fields map[string]interface{}) (*models.User, error) {
	var user models.User
	res := s.db.WithContext(ctx).Model(&user).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *DatabaseStore) CreateOrder(ctx context.Context, order *models.Order, lines []models.OrderLine) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order.Lines = nil
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for i := range lines {
			lines[i].OrderID = order.ID
		}
		if len(lines) == 0 {
			return nil
		}
		return tx.Create(&lines).Error
	})
}

func (s *DatabaseStore) FindOrder(ctx context.Context, filter OrderFilter) (*models.Order, error) {
	var order models.Order
	query := s.withRelations(ctx).Where("id = ?", filter.ID)
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if err := query.First(&order).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (s *DatabaseStore) ListOrders(ctx context.Context, filter OrderFilter) ([]models.Order, error) {
	var orders []models.Order
	query := s.withRelations(ctx)
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Limit > 0 {
		offset := filter.Offset
		if offset < 0 {
			offset = 0
		}
		query = query.Limit(filter.Limit).Offset(offset)
	}
	if err := query.Order("id desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *DatabaseStore) UpdateOrderStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	var order models.Order
	res := s.db.WithContext(ctx).Model(&order).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &order, nil
}

func (s *DatabaseStore) ListMenus(ctx context.Context) ([]models.Menu, error) {
	var menus []models.Menu
	if err := s.db.WithContext(ctx).Preload("Items").Order("id asc").Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (s *DatabaseStore) CreateMenu(ctx context.Context, menu *models.Menu) error {
	return s.db.WithContext(ctx).Create(menu).Error
}

func (s *DatabaseStore) withRelations(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Lines").
		Preload("User")
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "SQLSTATE 23505")
}
