package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	// Client routes
	apiGroup.Post("/clients/register", RegisterClient)

	// Preference routes
	preferencesGroup := apiGroup.Group("/preferences", middleware.ClientID())
	preferencesGroup.Get("/", GetPreferences)
	preferencesGroup.Put("/", SavePreferences)

	// Game routes
	apiGroup.Post("/games", CreateGame)
	apiGroup.Get("/games/:id", GetGame)
	apiGroup.Delete("/games/:id", DeleteGame)
	apiGroup.Post("/games/:id/moves", PlayMove)
	apiGroup.Post("/games/:id/restart", RestartGame)
	apiGroup.Put("/games/:id/settings", ConfigureGame)
}
