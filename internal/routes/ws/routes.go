package ws

import (
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/games"
	"github.com/lk16/reversi/internal/ws"
)

func handleWs(c *websocket.Conn) {
	manager := c.Locals("games").(*games.Manager) //nolint: errcheck

	h := ws.NewHandler(c, manager, c.Params("id"))
	err := h.Handle()
	if err != nil {
		slog.Error("ws handle error", "game", c.Params("id"), "error", err)
	}
}

// requireUpgrade rejects plain HTTP requests to websocket routes.
func requireUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// SetupRoutes sets up the routes for the websocket.
func SetupRoutes(app *fiber.App) {
	app.Get("/ws/games/:id", requireUpgrade, websocket.New(handleWs))
}
