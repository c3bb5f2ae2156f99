package models

import (
	"github.com/lk16/reversi/internal/othello"
)

// RegisterResponse represents the response for client registration.
type RegisterResponse struct {
	ClientID string `json:"client_id"`
}

// VersionResponse represents the response of the version endpoint.
type VersionResponse struct {
	Commit string `json:"commit"`
}

// CreateGameRequest represents the payload for starting a new game.
// Empty fields fall back to the defaults of a new session.
type CreateGameRequest struct {
	Opponent   string `json:"opponent"   validate:"omitempty,oneof=none black white"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

// SettingsRequest represents the payload for changing the computer opponent.
type SettingsRequest struct {
	Opponent   string `json:"opponent"   validate:"required,oneof=none black white"`
	Difficulty string `json:"difficulty" validate:"required,oneof=easy medium hard"`
}

// PreferencesRequest represents the payload for saving preferences. Every field must be present.
type PreferencesRequest struct {
	Theme      string `json:"theme"      validate:"required,oneof=light dark"`
	Difficulty *int   `json:"difficulty" validate:"required,min=0,max=2"`
	Opponent   string `json:"opponent"   validate:"required,oneof=none black white"`
}

// Preferences converts a validated request.
func (r *PreferencesRequest) Preferences() Preferences {
	return Preferences{
		Theme:      r.Theme,
		Difficulty: *r.Difficulty,
		Opponent:   r.Opponent,
	}
}

// MoveRequest represents a square picked by the player to act.
type MoveRequest struct {
	Row *int `json:"row" validate:"required,min=0,max=7"`
	Col *int `json:"col" validate:"required,min=0,max=7"`
}

// Score holds the disc counts.
type Score struct {
	Black int `json:"black"`
	White int `json:"white"`
}

// GameState is the public view of a game.
type GameState struct {
	ID             string         `json:"id"`
	Board          [][]string     `json:"board"`
	BoardString    string         `json:"board_string"`
	Turn           string         `json:"turn"`
	State          string         `json:"state"`
	ValidMoves     []othello.Move `json:"valid_moves"`
	Score          Score          `json:"score"`
	Result         string         `json:"result"`
	Message        string         `json:"message"`
	Opponent       string         `json:"opponent"`
	Difficulty     string         `json:"difficulty"`
	ComputerToMove bool           `json:"computer_to_move"`
	Generation     uint64         `json:"generation"`
}

// MoveResponse is a GameState with a flag telling if the move was played.
type MoveResponse struct {
	GameState

	Applied bool `json:"applied"`
}

// NewGameState builds the public view of a session.
func NewGameState(id string, session *othello.Session) GameState {
	board := session.Board()

	grid := make([][]string, othello.Size)
	for row := range othello.Size {
		grid[row] = make([]string, othello.Size)
		for col := range othello.Size {
			grid[row][col] = board.Cell(row, col).Symbol()
		}
	}

	black, white := session.Score()

	return GameState{
		ID:             id,
		Board:          grid,
		BoardString:    board.String(),
		Turn:           session.Turn().String(),
		State:          session.State().String(),
		ValidMoves:     session.ValidMoves(),
		Score:          Score{Black: black, White: white},
		Result:         session.Result().String(),
		Message:        session.Result().Message(),
		Opponent:       session.Opponent().String(),
		Difficulty:     session.Difficulty().String(),
		ComputerToMove: session.ComputerToMove(),
		Generation:     session.Generation(),
	}
}
