package handlers

import (
	"github.com/gofiber/fiber/v3"

	"delstarford/internal/store"
)

// HealthHandler reports process liveness and record store reachability.
type HealthHandler struct {
	store store.Store
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(st store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

// Check responds 200 when the store is reachable, 503 otherwise.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	if err := h.store.Ping(c.Context()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "degraded",
			"store":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"status": "ok",
		"store":  "ok",
	})
}
