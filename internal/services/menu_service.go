package services

import (
	"context"

	"github.com/example/quickbite/internal/models"
	"github.com/example/quickbite/internal/store"
)

// MenuService exposes the catalog.
type MenuService struct {
	menus store.MenuStore
}

func NewMenuService(menus store.MenuStore) *MenuService {
	return &MenuService{menus: menus}
}

// ListMenus returns every menu with its items. An empty catalog is not found.
func (s *MenuService) ListMenus(ctx context.Context) ([]models.Menu, error) {
	menus, err := s.menus.ListMenus(ctx)
	if err != nil {
		return nil, internal(err)
	}
	if len(menus) == 0 {
		return nil, newError(KindNotFound, MsgMenuNotFound)
	}
	return menus, nil
}
