package models

import (
	"time"

	"github.com/lk16/reversi/internal/othello"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Preferences are the presentation settings a player keeps across games.
type Preferences struct {
	Theme      string    `json:"theme"                yaml:"theme"      db:"theme"      validate:"required,oneof=light dark"`
	Difficulty int       `json:"difficulty"           yaml:"difficulty" db:"difficulty" validate:"min=0,max=2"`
	Opponent   string    `json:"opponent"             yaml:"opponent"   db:"opponent"   validate:"required,oneof=none black white"`
	UpdatedAt  time.Time `json:"updated_at,omitzero"  yaml:"-"          db:"updated_at"`
}

// DefaultPreferences returns the preferences of a player that never saved any.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:      ThemeLight,
		Difficulty: int(othello.Medium),
		Opponent:   othello.OpponentNone.String(),
	}
}

// Validate checks that all fields hold one of the allowed values.
func (p *Preferences) Validate() error {
	return Validate(p)
}

// GameDifficulty returns the difficulty as used by the game engine.
func (p *Preferences) GameDifficulty() othello.Difficulty {
	return othello.Difficulty(p.Difficulty)
}

// GameOpponent returns the opponent as used by the game engine.
func (p *Preferences) GameOpponent() othello.Opponent {
	opponent, err := othello.ParseOpponent(p.Opponent)
	if err != nil {
		return othello.OpponentNone
	}
	return opponent
}
