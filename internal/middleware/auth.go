package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	ClientIDHeader = "x-client-id"
	clientIDLocal  = "clientID"
)

// ClientID middleware that requires a registered client id in the x-client-id header.
func ClientID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(ClientIDHeader)
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing client ID",
			})
		}

		clientID, err := uuid.Parse(header)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid client ID",
			})
		}

		c.Locals(clientIDLocal, clientID.String())
		return c.Next()
	}
}

// GetClientID returns the client id stored by the ClientID middleware.
func GetClientID(c *fiber.Ctx) string {
	clientID, _ := c.Locals(clientIDLocal).(string)
	return clientID
}
