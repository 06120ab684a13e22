package http

import (
	"github.com/gofiber/fiber/v2"

	"careerpath/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. Paths match what
// the browser client calls; no versioned prefix.
func Register(app *fiber.App, profile *handlers.ProfileHandler, careers *handlers.CareerHandler, recommend *handlers.RecommendHandler, health *handlers.HealthHandler) {
	api := app.Group("/api")

	// Health and readiness endpoints for probes/monitoring
	api.Get("/health", health.Health)
	api.Get("/ready", health.Ready)

	api.Get("/profile/:name", profile.Get)
	api.Post("/profile", profile.Upsert)

	api.Get("/careers", careers.List)
	api.Post("/recommend", recommend.Recommend)
}
