package models

import (
	"encoding/json"
	"testing"

	"github.com/lk16/reversi/internal/othello"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameState(t *testing.T) {
	session := othello.NewSession()
	session.Configure(othello.OpponentWhite, othello.Easy)
	require.True(t, session.Play(2, 4))

	state := NewGameState("abc", session)

	assert.Equal(t, "abc", state.ID)
	assert.Equal(t, session.Board().String(), state.BoardString)
	assert.Equal(t, "white", state.Turn)
	assert.Equal(t, "in_progress", state.State)
	assert.Equal(t, "undecided", state.Result)
	assert.Equal(t, "Game in progress", state.Message)
	assert.Equal(t, "white", state.Opponent)
	assert.Equal(t, "easy", state.Difficulty)
	assert.True(t, state.ComputerToMove)
	assert.Equal(t, Score{Black: 4, White: 1}, state.Score)
	assert.Equal(t, []othello.Move{{Row: 2, Col: 3}, {Row: 2, Col: 5}, {Row: 4, Col: 5}}, state.ValidMoves)

	require.Len(t, state.Board, othello.Size)
	for _, row := range state.Board {
		require.Len(t, row, othello.Size)
	}
	assert.Equal(t, "B", state.Board[2][4])
	assert.Equal(t, "B", state.Board[3][4])
	assert.Equal(t, "W", state.Board[4][3])
	assert.Empty(t, state.Board[0][0])
}

func TestNewGameState_GameOver(t *testing.T) {
	board, err := othello.NewBoardFromString("00000000000000010000000000000002")
	require.NoError(t, err)

	session := othello.RestoreSession(board, othello.Black, othello.InProgress, othello.OpponentNone, othello.Medium, 0)
	require.True(t, session.Play(0, 2))

	state := NewGameState("abc", session)
	assert.Equal(t, "game_over", state.State)
	assert.Equal(t, "black_wins", state.Result)
	assert.Equal(t, "Black wins!", state.Message)
	assert.Empty(t, state.ValidMoves)
	assert.NotNil(t, state.ValidMoves)
}

func TestMoveResponseJSON(t *testing.T) {
	resp := MoveResponse{
		GameState: NewGameState("abc", othello.NewSession()),
		Applied:   true,
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.Equal(t, true, fields["applied"])
	assert.Equal(t, "abc", fields["id"])
	assert.Equal(t, "black", fields["turn"])
	assert.Contains(t, fields, "valid_moves")
	assert.Contains(t, fields, "computer_to_move")
}

func TestMoveRequestValidation(t *testing.T) {
	row, col, off := 2, 4, 8

	require.NoError(t, Validate(&MoveRequest{Row: &row, Col: &col}))
	require.EqualError(t, Validate(&MoveRequest{Row: &row}), "Col is required")
	require.EqualError(t, Validate(&MoveRequest{Row: &off, Col: &col}), "Row must be at most 7")
	require.EqualError(t, Validate(&MoveRequest{}), "Row is required; Col is required")
}

func TestSettingsValidation(t *testing.T) {
	require.NoError(t, Validate(&CreateGameRequest{}))
	require.NoError(t, Validate(&CreateGameRequest{Opponent: "black", Difficulty: "hard"}))
	require.EqualError(t, Validate(&CreateGameRequest{Difficulty: "expert"}),
		"Difficulty must be one of [easy medium hard]")

	require.NoError(t, Validate(&SettingsRequest{Opponent: "none", Difficulty: "easy"}))
	require.EqualError(t, Validate(&SettingsRequest{Opponent: "none"}), "Difficulty is required")
}

func TestPreferencesRequestValidation(t *testing.T) {
	easy := 0

	request := PreferencesRequest{Theme: "dark", Difficulty: &easy, Opponent: "black"}
	require.NoError(t, Validate(&request))
	require.Equal(t, Preferences{Theme: "dark", Difficulty: 0, Opponent: "black"}, request.Preferences())

	request.Difficulty = nil
	require.EqualError(t, Validate(&request), "Difficulty is required")
}
