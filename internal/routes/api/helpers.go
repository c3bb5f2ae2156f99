package api

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/games"
	"github.com/lk16/reversi/internal/models"
)

// PreferenceStore keeps the preferences of web clients.
type PreferenceStore interface {
	Get(ctx context.Context, clientID string) (models.Preferences, error)
	Save(ctx context.Context, clientID string, prefs models.Preferences) (models.Preferences, error)
}

func getManager(c *fiber.Ctx) *games.Manager {
	return c.Locals("games").(*games.Manager) //nolint: errcheck
}

func getPreferenceStore(c *fiber.Ctx) PreferenceStore {
	return c.Locals("preferences").(PreferenceStore) //nolint: errcheck
}

// parseBody decodes the JSON body into payload and validates it.
func parseBody(c *fiber.Ctx, payload any) error {
	if err := c.BodyParser(payload); err != nil {
		return errors.New("invalid request body")
	}

	return models.Validate(payload)
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// gameError maps errors of the game manager to a response.
func gameError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, games.ErrGameNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, games.ErrComputerTurn):
		status = fiber.StatusConflict
	default:
		slog.Error("Game request failed", "path", c.Path(), "error", err)
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
