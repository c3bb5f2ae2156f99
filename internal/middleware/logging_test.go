package middleware

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestLogging(t *testing.T) {
	var output bytes.Buffer

	app := fiber.New()
	app.Use(Logging(&output))
	app.Get("/*", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusTeapot)
	})

	for _, path := range []string{"/api/games", "/static/game.js"} {
		req, err := http.NewRequest(http.MethodGet, path, nil)
		require.NoError(t, err)

		resp, err := app.Test(req)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
	}

	line := output.String()
	require.Contains(t, line, "| 418 |")
	require.Contains(t, line, "| GET | /api/games")
	require.Contains(t, line, "ms |")
	require.NotContains(t, line, "/static/")
}
