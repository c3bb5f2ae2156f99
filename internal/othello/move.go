package othello

import (
	"fmt"
	"strings"
)

// Move is a square to place a disc on. The player is implied by the caller.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoMove is returned when no move can be selected.
var NoMove = Move{Row: -1, Col: -1}

// IsNone checks if the move is the NoMove sentinel.
func (m Move) IsNone() bool {
	return m == NoMove
}

// String returns the field notation of the move, such as "e3".
func (m Move) String() string {
	if !IsOnBoard(m.Row, m.Col) {
		return "--"
	}
	return fmt.Sprintf("%c%d", 'a'+m.Col, m.Row+1)
}

// ParseMove converts a field notation (e.g. "a1", "h8") to a move.
// The letter is the column, the digit is the row.
func ParseMove(field string) (Move, error) {
	if len(field) != 2 {
		return NoMove, fmt.Errorf("invalid field length: %q", field)
	}

	field = strings.ToLower(field)

	if !('a' <= field[0] && field[0] <= 'h' && '1' <= field[1] && field[1] <= '8') {
		return NoMove, fmt.Errorf("invalid field: %q", field)
	}

	return Move{
		Row: int(field[1] - '1'),
		Col: int(field[0] - 'a'),
	}, nil
}
