package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/boutique-analytics/internal/application/analytics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC      *analytics.DashboardUseCase
	ReportUC         *analytics.ReportUseCase
	RefreshPerMinute int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	dashboard := api.Group("/dashboard")
	h := NewDashboardHandler(deps.DashboardUC, deps.ReportUC)
	dashboard.Get("/", h.GetDashboard)
	dashboard.Get("/filters", h.GetFilters)
	dashboard.Get("/report.pdf", h.DownloadReport)
	dashboard.Post("/refresh", RateLimit(deps.RefreshPerMinute), h.Refresh)
}
