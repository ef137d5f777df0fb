package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck probes one dependency.
type HealthCheck func(ctx context.Context) error

// HealthHandler reports service liveness and dependency status.
type HealthHandler struct {
	service string
	storage string
	checks  map[string]HealthCheck
}

// NewHealthHandler constructs HealthHandler. storage names the active
// store backend.
func NewHealthHandler(service, storage string, checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{service: service, storage: storage, checks: checks}
}

// Root returns a short service banner.
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service": h.service,
		"status":  "healthy",
		"storage": h.storage,
	})
}

// Health runs every dependency check. Any failure turns the response 503.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
	defer cancel()

	status := fiber.StatusOK
	deps := fiber.Map{}
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			deps[name] = "error: " + err.Error()
			status = fiber.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}

	overall := "healthy"
	if status != fiber.StatusOK {
		overall = "degraded"
	}

	return c.Status(status).JSON(fiber.Map{
		"status":       overall,
		"dependencies": deps,
		"timestamp":    time.Now().UTC(),
	})
}
