package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/models"
)

// RegisterClient hands out a new client id. Clients send it in the x-client-id
// header to store their preferences.
func RegisterClient(c *fiber.Ctx) error {
	resp := models.RegisterResponse{
		ClientID: uuid.NewString(),
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
