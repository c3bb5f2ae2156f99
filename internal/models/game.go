package models

import (
	"fmt"
	"time"

	"github.com/lk16/reversi/internal/othello"
)

// GameRecord is how a session is stored between requests.
type GameRecord struct {
	ID         string    `json:"id"`
	Board      string    `json:"board"`
	Turn       string    `json:"turn"`
	State      string    `json:"state"`
	Opponent   string    `json:"opponent"`
	Difficulty string    `json:"difficulty"`
	Generation uint64    `json:"generation"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewGameRecord converts a session into a record.
func NewGameRecord(id string, session *othello.Session) *GameRecord {
	return &GameRecord{
		ID:         id,
		Board:      session.Board().String(),
		Turn:       session.Turn().String(),
		State:      session.State().String(),
		Opponent:   session.Opponent().String(),
		Difficulty: session.Difficulty().String(),
		Generation: session.Generation(),
		UpdatedAt:  time.Now(),
	}
}

// Session converts the record back into a session.
func (r *GameRecord) Session() (*othello.Session, error) {
	board, err := othello.NewBoardFromString(r.Board)
	if err != nil {
		return nil, fmt.Errorf("invalid board: %w", err)
	}

	turn, err := othello.ParsePlayer(r.Turn)
	if err != nil {
		return nil, err
	}

	state, err := othello.ParseState(r.State)
	if err != nil {
		return nil, err
	}

	opponent, err := othello.ParseOpponent(r.Opponent)
	if err != nil {
		return nil, err
	}

	difficulty, err := othello.ParseDifficulty(r.Difficulty)
	if err != nil {
		return nil, err
	}

	return othello.RestoreSession(board, turn, state, opponent, difficulty, r.Generation), nil
}
