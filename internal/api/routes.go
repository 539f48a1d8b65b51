package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jiyul/junior-insight/internal/config"
	"github.com/jiyul/junior-insight/internal/middleware"
	"github.com/jiyul/junior-insight/internal/mission"
	"github.com/jiyul/junior-insight/internal/news"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(app *fiber.App, cfg *config.Config, newsSvc *news.Service, missionSvc *mission.Service) {
	handlers := NewHandlers(cfg, newsSvc, missionSvc)

	// API group with versioning
	api := app.Group("/api/v1")

	// Health check endpoint
	api.Get("/health", handlers.HealthCheck)

	// News endpoints
	api.Get("/news", handlers.GetNews)

	// Mission endpoints
	missions := api.Group("/missions")
	{
		missions.Get("", handlers.GetMissions)
		missions.Post("", handlers.SubmitMission)
	}

	api.Get("/stats", handlers.GetStats)

	// Admin endpoints
	admin := api.Group("/admin", middleware.AdminOnly(cfg.AdminAPIKey))
	{
		admin.Post("/refresh", handlers.RefreshNews)
	}

	// 404 Handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
		})
	})
}
