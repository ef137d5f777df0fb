package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/quickbite/internal/services"
	"github.com/example/quickbite/internal/utils"
)

// MenuHandler serves the catalog.
type MenuHandler struct {
	menus *services.MenuService
}

func NewMenuHandler(menus *services.MenuService) *MenuHandler {
	return &MenuHandler{menus: menus}
}

// ListMenus returns every menu with its items.
func (h *MenuHandler) ListMenus(c *fiber.Ctx) error {
	menus, err := h.menus.ListMenus(c.UserContext())
	if err != nil {
		return err
	}
	return utils.Respond(c, fiber.StatusOK, "", "", menus)
}
