package handlers

import (
	"github.com/gofiber/fiber/v3"

	"delstarford/internal/config"
	"delstarford/internal/models"
)

// PageHandler renders the informational pages. None of these carry logic;
// they exist so the whole site is served from one process.
type PageHandler struct {
	cfg     *config.Config
	catalog []models.Product
}

// NewPageHandler creates a page handler with the product catalogue injected.
func NewPageHandler(cfg *config.Config, catalog []models.Product) *PageHandler {
	return &PageHandler{cfg: cfg, catalog: catalog}
}

func (h *PageHandler) render(c fiber.Ctx, view, title string) error {
	return c.Render(view, MergeBranding(fiber.Map{"Title": title}, h.cfg))
}

func (h *PageHandler) Home(c fiber.Ctx) error {
	return h.render(c, "home", "Home")
}

func (h *PageHandler) Services(c fiber.Ctx) error {
	return h.render(c, "services", "Services")
}

// AILab renders the catalogue of fixed product listings.
func (h *PageHandler) AILab(c fiber.Ctx) error {
	return c.Render("ai_lab", MergeBranding(fiber.Map{
		"Title":  "AI Lab",
		"Models": h.catalog,
	}, h.cfg))
}

func (h *PageHandler) Dashboard(c fiber.Ctx) error {
	return h.render(c, "dashboard", "Dashboard")
}

func (h *PageHandler) Contact(c fiber.Ctx) error {
	return h.render(c, "contact", "Contact")
}

func (h *PageHandler) Location(c fiber.Ctx) error {
	return h.render(c, "location", "Location")
}

func (h *PageHandler) About(c fiber.Ctx) error {
	return h.render(c, "about", "About")
}

func (h *PageHandler) Privacy(c fiber.Ctx) error {
	return h.render(c, "privacy", "Privacy")
}

func (h *PageHandler) CaseStudy(c fiber.Ctx) error {
	return h.render(c, "case_study", "Case Study")
}

// Login and Register render static pages only; there is no authentication
// behind them.
func (h *PageHandler) Login(c fiber.Ctx) error {
	return h.render(c, "login", "Login")
}

func (h *PageHandler) Register(c fiber.Ctx) error {
	return h.render(c, "register", "Register")
}

func (h *PageHandler) Estimator(c fiber.Ctx) error {
	return h.render(c, "price_estimator", "Price Estimator")
}
