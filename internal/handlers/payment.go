package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/quickbite/internal/services"
	"github.com/example/quickbite/internal/utils"
)

// PaymentHandler starts card payments.
type PaymentHandler struct {
	payments *services.PaymentService
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type paymentRequest struct {
	Amount int64 `json:"amount" validate:"gte=1"`
}

// CreatePaymentIntent returns the keys the client needs to confirm a payment.
func (h *PaymentHandler) CreatePaymentIntent(c *fiber.Ctx) error {
	var req paymentRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	intent, err := h.payments.CreatePaymentIntent(c.UserContext(), req.Amount)
	if err != nil {
		return err
	}
	return utils.Respond(c, fiber.StatusOK, "", "", intent)
}
