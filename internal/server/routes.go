package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"delstarford/internal/handlers"
	"delstarford/internal/leads"
	"delstarford/internal/models"
	"delstarford/internal/store"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(leadService *leads.Service, recordStore store.Store, catalog []models.Product) {
	pageHandler := handlers.NewPageHandler(s.Cfg, catalog)
	estimateHandler := handlers.NewEstimateHandler()
	leadHandler := handlers.NewLeadHandler(s.Cfg, leadService)
	dashboardHandler := handlers.NewDashboardHandler(s.Cfg, recordStore)
	healthHandler := handlers.NewHealthHandler(recordStore)

	// Informational pages
	s.App.Get("/", pageHandler.Home)
	s.App.Get("/services", pageHandler.Services)
	s.App.Get("/ai-lab", pageHandler.AILab)
	s.App.Get("/dashboard", pageHandler.Dashboard)
	s.App.Get("/contact", pageHandler.Contact)
	s.App.Get("/location", pageHandler.Location)
	s.App.Get("/about", pageHandler.About)
	s.App.Get("/privacy", pageHandler.Privacy)
	s.App.Get("/case-study", pageHandler.CaseStudy)
	s.App.Get("/login", pageHandler.Login)
	s.App.Get("/register", pageHandler.Register)
	s.App.Get("/estimator", pageHandler.Estimator)

	// Logic routes
	s.App.Post("/calculate-estimate", estimateHandler.Calculate)
	s.App.Get("/custom", leadHandler.Form)
	s.App.Post("/custom", leadHandler.Submit)
	s.App.Get("/dashboard-data", dashboardHandler.Data)
	s.App.Get("/admin/simulate-update", dashboardHandler.SimulateUpdate)

	// Operational endpoints
	s.App.Get("/health", healthHandler.Check)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
