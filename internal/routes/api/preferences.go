package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/middleware"
	"github.com/lk16/reversi/internal/models"
)

// GetPreferences returns the preferences of the client, or the defaults.
func GetPreferences(c *fiber.Ctx) error {
	prefs, err := getPreferenceStore(c).Get(c.Context(), middleware.GetClientID(c))
	if err != nil {
		slog.Error("Cannot load preferences", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(prefs)
}

// SavePreferences replaces the preferences of the client.
func SavePreferences(c *fiber.Ctx) error {
	var payload models.PreferencesRequest
	if err := parseBody(c, &payload); err != nil {
		return badRequest(c, err)
	}

	prefs, err := getPreferenceStore(c).Save(c.Context(), middleware.GetClientID(c), payload.Preferences())
	if err != nil {
		slog.Error("Cannot save preferences", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(prefs)
}
