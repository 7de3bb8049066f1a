package handlers

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"delstarford/internal/config"
	"delstarford/internal/logger"
	"delstarford/internal/store"
)

// DashboardHandler serves the live-dashboard data endpoints backed by the
// record store. The user identity is a fixed demo key; there is no session
// resolution behind it.
type DashboardHandler struct {
	cfg   *config.Config
	store store.Store
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(cfg *config.Config, st store.Store) *DashboardHandler {
	return &DashboardHandler{cfg: cfg, store: st}
}

// Data returns the demo user's active project record as opaque JSON, or
// null when nothing is stored yet.
func (h *DashboardHandler) Data(c fiber.Ctx) error {
	data, err := h.store.Read(c.Context(), "active_projects/"+h.cfg.DemoUserID)
	if err != nil {
		logger.Global().Error().Err(err).Msg("dashboard read failed")
		return fiber.NewError(fiber.StatusInternalServerError, "dashboard data unavailable")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if len(data) == 0 {
		return c.SendString("null")
	}
	return c.Send(data)
}

// SimulateUpdate mutates the demo dashboard state: it merges a new project
// status and pushes an activity entry. Test-only helper route.
func (h *DashboardHandler) SimulateUpdate(c fiber.Ctx) error {
	now := time.Now()
	userID := h.cfg.DemoUserID

	err := h.store.Update(c.Context(), "active_projects/"+userID, map[string]any{
		"status":       "Genetic Analysis Completed",
		"last_updated": now.Format(time.RFC3339),
	})
	if err != nil {
		return c.SendString("Error: " + err.Error())
	}

	_, err = h.store.Push(c.Context(), "users/"+userID+"/activity", map[string]any{
		"time":    now.Format("15:04"),
		"message": "Lab results uploaded to secure server.",
	})
	if err != nil {
		return c.SendString("Error: " + err.Error())
	}

	return c.SendString("Admin update simulated successfully!")
}
