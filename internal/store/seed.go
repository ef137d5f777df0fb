package store

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/quickbite/internal/models"
	"github.com/example/quickbite/internal/utils"
)

// ErrMissingAdminCredentials is returned when no admin phone or password is configured.
var ErrMissingAdminCredentials = errors.New("admin phone and password are required")

// Seeder loads the admin account and the starter catalog.
type Seeder struct {
	store  Store
	logger *zap.Logger
}

func NewSeeder(store Store, logger *zap.Logger) *Seeder {
	return &Seeder{store: store, logger: logger}
}

// SeedAdmin creates an activated admin, or promotes the existing account
// registered with phoneNumber.
func (s *Seeder) SeedAdmin(ctx context.Context, phoneNumber, password string) error {
	if phoneNumber == "" || password == "" {
		return ErrMissingAdminCredentials
	}

	existing, err := s.store.FindUserByPhone(ctx, phoneNumber)
	switch {
	case err == nil:
		if existing.Role == models.RoleAdmin && existing.ActivationStatus {
			s.logger.Info("admin already present", zap.Uint("id", existing.ID))
			return nil
		}
		if _, err := s.store.UpdateUser(ctx, existing.ID, map[string]interface{}{
			"role":   models.RoleAdmin,
			"status": true,
		}); err != nil {
			return fmt.Errorf("promote admin: %w", err)
		}
		s.logger.Info("existing user promoted to admin", zap.Uint("id", existing.ID))
		return nil
	case !errors.Is(err, ErrNotFound):
		return err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &models.User{
		FirstName:        "Jane",
		LastName:         "Doe",
		PhoneNumber:      phoneNumber,
		Address:          "KK 185 St, 211, 10th Floor, 1",
		PasswordHash:     hash,
		ActivationStatus: true,
		Role:             models.RoleAdmin,
	}
	if err := s.store.CreateUser(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	s.logger.Info("admin created", zap.Uint("id", admin.ID))
	return nil
}

// SeedMenus loads DefaultMenus when the catalog is empty.
func (s *Seeder) SeedMenus(ctx context.Context) error {
	menus, err := s.store.ListMenus(ctx)
	if err != nil {
		return err
	}
	if len(menus) > 0 {
		s.logger.Info("catalog already seeded", zap.Int("menus", len(menus)))
		return nil
	}

	for _, menu := range DefaultMenus() {
		menu := menu
		if err := s.store.CreateMenu(ctx, &menu); err != nil {
			return fmt.Errorf("create menu %q: %w", menu.Name, err)
		}
	}

	s.logger.Info("catalog seeded")
	return nil
}

// DefaultMenus is the starter catalog.
func DefaultMenus() []models.Menu {
	return []models.Menu{
		{
			Name: "Breakfast",
			Items: []models.Item{
				{
					Name:        "French Omelette De Fromage",
					Description: "Our famous Omelette De Fromage with lots of Cheese.",
					Cost:        4.00,
					Size:        "Medium",
					Image:       "https://media.istockphoto.com/photos/omelette-picture-id155375267",
				},
			},
		},
		{
			Name: "Lunch/Dinner",
			Items: []models.Item{
				{
					Name:        "Double Cheese Burger",
					Description: "This is a very tasty cheese burger.",
					Cost:        6.50,
					Size:        "Large",
					Image:       "https://media.istockphoto.com/photos/delicious-fresh-cooked-burger-with-a-side-of-french-fries-picture-id177556385",
				},
				{
					Name:        "Chicken Pizza",
					Description: "This is a very tasty Pizza.",
					Cost:        9.00,
					Size:        "Large",
					Image:       "https://media.istockphoto.com/photos/delicious-vegetarian-pizza-on-white-picture-id1192094401",
				},
			},
		},
		{
			Name: "Drinks",
			Items: []models.Item{
				{
					Name:        "Diet Coke",
					Description: "Diet Coke without added sugar.",
					Cost:        1.50,
					Size:        "Small",
					Image:       "https://media.istockphoto.com/photos/can-of-cocacola-on-ice-picture-id487787108",
				},
				{
					Name:        "Cappucinno",
					Description: "The best Cappucinno in town.",
					Cost:        1.50,
					Size:        "Medium",
					Image:       "https://www.istockphoto.com/photo/3d-paper-coffee-cup-and-lid-isolated-on-white-gm1165889671-320956287",
				},
			},
		},
	}
}
