package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/quickbite/internal/middleware"
	"github.com/example/quickbite/internal/models"
	"github.com/example/quickbite/internal/services"
	"github.com/example/quickbite/internal/utils"
)

// OrderHandler manages order endpoints for customers and admins.
type OrderHandler struct {
	orders *services.OrderService
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type orderLineRequest struct {
	ItemID   uint    `json:"itemId" validate:"required,gt=0"`
	ItemName string  `json:"itemName" validate:"required"`
	Cost     float64 `json:"cost" validate:"gte=1"`
	Quantity int     `json:"quantity" validate:"gte=1"`
}

type placeOrderRequest struct {
	Total     float64            `json:"total" validate:"gte=1"`
	Contents  []orderLineRequest `json:"contents" validate:"required,min=1,dive"`
	PaymentID string             `json:"paymentId" validate:"required"`
}

// PlaceOrder stores a new pending order for the caller.
func (h *OrderHandler) PlaceOrder(c *fiber.Ctx) error {
	var req placeOrderRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	lines := make([]services.OrderLineInput, 0, len(req.Contents))
	for _, l := range req.Contents {
		lines = append(lines, services.OrderLineInput{
			ItemID:   l.ItemID,
			ItemName: l.ItemName,
			Cost:     l.Cost,
			Quantity: l.Quantity,
		})
	}

	order, err := h.orders.PlaceOrder(c.UserContext(), middleware.GetPrincipal(c), services.PlaceOrderInput{
		Total:     req.Total,
		Lines:     lines,
		PaymentID: req.PaymentID,
	})
	if err != nil {
		return err
	}

	return utils.Respond(c, fiber.StatusCreated, "order placed successfully", "", order)
}

// ListMyOrders lists the caller's own orders, newest first.
func (h *OrderHandler) ListMyOrders(c *fiber.Ctx) error {
	orders, err := h.orders.ListOrdersPage(c.UserContext(), middleware.GetPrincipal(c).ID, utils.ParsePagination(c))
	if err != nil {
		return err
	}
	return utils.Respond(c, fiber.StatusOK, "", "", orders)
}

// GetMyOrder returns one of the caller's orders.
func (h *OrderHandler) GetMyOrder(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orders.GetOrder(c.UserContext(), id, middleware.GetPrincipal(c).ID)
	if err != nil {
		return err
	}
	return utils.Respond(c, fiber.StatusOK, "", "", order)
}

// ListOrders lists every order. Admin only.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	orders, err := h.orders.ListOrdersPage(c.UserContext(), 0, utils.ParsePagination(c))
	if err != nil {
		return err
	}
	return utils.Respond(c, fiber.StatusOK, "", "", orders)
}

// GetOrder returns any order. Admin only.
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orders.GetOrder(c.UserContext(), id, 0)
	if err != nil {
		return err
	}
	return utils.Respond(c, fiber.StatusOK, "", "", order)
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted onthemove completed"`
}

// UpdateOrderStatus moves an order along its lifecycle. Admin only.
func (h *OrderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orders.UpdateOrderStatus(c.UserContext(), id, models.OrderStatus(req.Status))
	if err != nil {
		return err
	}
	return utils.Respond(c, fiber.StatusOK, "order status updated successfully", "", order)
}
