package handlers

import (
	"github.com/gofiber/fiber/v3"

	"delstarford/internal/config"
	"delstarford/internal/leads"
	"delstarford/internal/metrics"
	"delstarford/internal/models"
	"delstarford/internal/validation"
)

// LeadHandler serves the custom-solution form and its submissions.
type LeadHandler struct {
	cfg     *config.Config
	service *leads.Service
}

// NewLeadHandler creates a new lead handler.
func NewLeadHandler(cfg *config.Config, service *leads.Service) *LeadHandler {
	return &LeadHandler{cfg: cfg, service: service}
}

// Form renders the custom-solution request form.
func (h *LeadHandler) Form(c fiber.Ctx) error {
	return c.Render("custom", MergeBranding(fiber.Map{
		"Title": "Custom Solution",
	}, h.cfg))
}

// Submit accepts a lead submission as a form-encoded or JSON body, both
// normalized into one LeadSubmission before the workflow runs. Required
// fields are enforced here; the workflow itself tolerates empty fields.
func (h *LeadHandler) Submit(c fiber.Ctx) error {
	var sub models.LeadSubmission
	if err := c.Bind().Body(&sub); err != nil {
		metrics.RecordLead("invalid")
		return c.Status(fiber.StatusBadRequest).JSON(leads.Outcome{
			Success: false,
			Message: "Could not read the submitted form",
		})
	}

	sub = validation.NormalizeLeadSubmission(sub)
	if msg := validation.ValidateLeadSubmission(sub); msg != "" {
		metrics.RecordLead("invalid")
		return c.Status(fiber.StatusBadRequest).JSON(leads.Outcome{
			Success: false,
			Message: msg,
		})
	}

	outcome := h.service.Submit(c.Context(), sub)
	if !outcome.Success {
		return c.Status(fiber.StatusInternalServerError).JSON(outcome)
	}
	return c.JSON(outcome)
}
