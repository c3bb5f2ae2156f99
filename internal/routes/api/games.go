package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
)

// parseSettings converts opponent and difficulty names. Empty names give the defaults.
func parseSettings(opponentName, difficultyName string) (othello.Opponent, othello.Difficulty, error) {
	opponent, err := othello.ParseOpponent(opponentName)
	if err != nil {
		return othello.OpponentNone, othello.Medium, err
	}

	if difficultyName == "" {
		return opponent, othello.Medium, nil
	}

	difficulty, err := othello.ParseDifficulty(difficultyName)
	if err != nil {
		return othello.OpponentNone, othello.Medium, err
	}

	return opponent, difficulty, nil
}

// CreateGame starts a new game. The body is optional.
func CreateGame(c *fiber.Ctx) error {
	var payload models.CreateGameRequest
	if len(c.Body()) > 0 {
		if err := parseBody(c, &payload); err != nil {
			return badRequest(c, err)
		}
	}

	opponent, difficulty, err := parseSettings(payload.Opponent, payload.Difficulty)
	if err != nil {
		return badRequest(c, err)
	}

	state, err := getManager(c).Create(c.Context(), opponent, difficulty)
	if err != nil {
		return gameError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(state)
}

// GetGame returns the state of a game.
func GetGame(c *fiber.Ctx) error {
	state, err := getManager(c).Get(c.Context(), c.Params("id"))
	if err != nil {
		return gameError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(state)
}

// PlayMove plays a move for the human player to act. Illegal moves are
// reported with applied set to false.
func PlayMove(c *fiber.Ctx) error {
	var payload models.MoveRequest
	if err := parseBody(c, &payload); err != nil {
		return badRequest(c, err)
	}

	state, applied, err := getManager(c).Move(c.Context(), c.Params("id"), *payload.Row, *payload.Col)
	if err != nil {
		return gameError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.MoveResponse{
		GameState: state,
		Applied:   applied,
	})
}

// RestartGame resets a game to the start position.
func RestartGame(c *fiber.Ctx) error {
	state, err := getManager(c).Restart(c.Context(), c.Params("id"))
	if err != nil {
		return gameError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(state)
}

// ConfigureGame changes the computer opponent of a game.
func ConfigureGame(c *fiber.Ctx) error {
	var payload models.SettingsRequest
	if err := parseBody(c, &payload); err != nil {
		return badRequest(c, err)
	}

	opponent, difficulty, err := parseSettings(payload.Opponent, payload.Difficulty)
	if err != nil {
		return badRequest(c, err)
	}

	state, err := getManager(c).Configure(c.Context(), c.Params("id"), opponent, difficulty)
	if err != nil {
		return gameError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(state)
}

// DeleteGame removes a game.
func DeleteGame(c *fiber.Ctx) error {
	if err := getManager(c).Delete(c.Context(), c.Params("id")); err != nil {
		return gameError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
