package othello

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Size is the width and height of the board.
const Size = 8

// Player is one of the two colors.
type Player int

const (
	Black Player = iota
	White
)

// Opponent returns the other color.
func (p Player) Opponent() Player {
	return Black + White - p
}

// String returns "black" or "white".
func (p Player) String() string {
	if p == White {
		return "white"
	}
	return "black"
}

// ParsePlayer parses the output of Player.String. Single letters "b" and "w" are accepted too.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(s) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	default:
		return Black, fmt.Errorf("invalid player: %q", s)
	}
}

// Cell is the content of a single square.
type Cell int

const (
	Empty Cell = iota
	BlackDisc
	WhiteDisc
)

// Owner returns the player owning the disc in the cell, ok is false for empty cells.
func (c Cell) Owner() (Player, bool) {
	switch c {
	case BlackDisc:
		return Black, true
	case WhiteDisc:
		return White, true
	default:
		return Black, false
	}
}

// Symbol returns "B", "W" or "" for an empty cell.
func (c Cell) Symbol() string {
	switch c {
	case BlackDisc:
		return "B"
	case WhiteDisc:
		return "W"
	default:
		return ""
	}
}

// directions are the eight compass directions as (row, col) deltas.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is an immutable 8x8 Reversi board. Bit row*8+col of a mask is set when
// that square holds a disc of the mask's color.
type Board struct {
	black uint64
	white uint64
}

// NewBoardStart creates the board at the start of a game.
func NewBoardStart() Board {
	return NewBoardEmpty().
		set(3, 3, Black).
		set(4, 4, Black).
		set(3, 4, White).
		set(4, 3, White)
}

// NewBoardEmpty creates a board without discs.
func NewBoardEmpty() Board {
	return Board{}
}

// NewBoardFromString parses the output of Board.String.
func NewBoardFromString(s string) (Board, error) {
	if len(s) != 32 {
		return Board{}, fmt.Errorf("board string must be 32 characters long, got %d", len(s))
	}

	black, err := strconv.ParseUint(s[:16], 16, 64)
	if err != nil {
		return Board{}, fmt.Errorf("invalid black discs: %w", err)
	}

	white, err := strconv.ParseUint(s[16:], 16, 64)
	if err != nil {
		return Board{}, fmt.Errorf("invalid white discs: %w", err)
	}

	if black&white != 0 {
		return Board{}, fmt.Errorf("invalid board: black and white discs cannot overlap")
	}

	return Board{black: black, white: white}, nil
}

// IsOnBoard returns whether both coordinates lie in [0, Size).
func IsOnBoard(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

func bit(row, col int) uint64 {
	return uint64(1) << (row*Size + col)
}

func (b Board) discs(p Player) uint64 {
	if p == White {
		return b.white
	}
	return b.black
}

// set returns a copy of the board with a disc of p on the square.
func (b Board) set(row, col int, p Player) Board {
	mask := bit(row, col)
	if p == White {
		b.white |= mask
		b.black &^= mask
	} else {
		b.black |= mask
		b.white &^= mask
	}
	return b
}

// Cell returns the content of a square. Squares off the board are reported empty.
func (b Board) Cell(row, col int) Cell {
	if !IsOnBoard(row, col) {
		return Empty
	}

	mask := bit(row, col)
	switch {
	case b.black&mask != 0:
		return BlackDisc
	case b.white&mask != 0:
		return WhiteDisc
	default:
		return Empty
	}
}

// Flipped returns a mask with the opponent discs that p would flip by playing on the square.
// It is zero for occupied squares and for squares that capture nothing.
func (b Board) Flipped(row, col int, p Player) uint64 {
	if !IsOnBoard(row, col) || b.Cell(row, col) != Empty {
		return 0
	}

	own := b.discs(p)
	opp := b.discs(p.Opponent())

	flipped := uint64(0)

	for _, dir := range directions {
		run := uint64(0)
		r, c := row+dir[0], col+dir[1]

		for IsOnBoard(r, c) && opp&bit(r, c) != 0 {
			run |= bit(r, c)
			r += dir[0]
			c += dir[1]
		}

		// The run only counts when a disc of our own closes it.
		if run != 0 && IsOnBoard(r, c) && own&bit(r, c) != 0 {
			flipped |= run
		}
	}

	return flipped
}

// IsValidMove checks if p can play on the square.
func (b Board) IsValidMove(row, col int, p Player) bool {
	return b.Flipped(row, col, p) != 0
}

// ValidMoves returns the legal moves of p in row-major order.
func (b Board) ValidMoves(p Player) []Move {
	moves := make([]Move, 0)

	for row := range Size {
		for col := range Size {
			if b.IsValidMove(row, col, p) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// HasMoves checks if p has at least one legal move.
func (b Board) HasMoves(p Player) bool {
	for row := range Size {
		for col := range Size {
			if b.IsValidMove(row, col, p) {
				return true
			}
		}
	}
	return false
}

// DoMove plays a move for p and returns the new board.
// If the move is invalid, the same board is returned.
func (b Board) DoMove(row, col int, p Player) Board {
	flipped := b.Flipped(row, col, p)
	if flipped == 0 {
		return b
	}

	placed := flipped | bit(row, col)
	if p == White {
		b.white |= placed
		b.black &^= placed
	} else {
		b.black |= placed
		b.white &^= placed
	}
	return b
}

// CountPieces returns the number of black and white discs.
func (b Board) CountPieces() (black, white int) {
	return bits.OnesCount64(b.black), bits.OnesCount64(b.white)
}

// Count returns the number of discs of p.
func (b Board) Count(p Player) int {
	return bits.OnesCount64(b.discs(p))
}

// CountDiscs returns the number of discs on the board.
func (b Board) CountDiscs() int {
	return bits.OnesCount64(b.black | b.white)
}

// ASCIIArtLines returns the ascii art lines for the board, marking the moves of p.
func (b Board) ASCIIArtLines(p Player) []string {
	lines := make([]string, Size+2)

	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for row := range Size {
		line := fmt.Sprintf("%d ", row+1)

		for col := range Size {
			switch b.Cell(row, col) {
			case WhiteDisc:
				line += "○ "
			case BlackDisc:
				line += "● "
			default:
				if b.IsValidMove(row, col, p) {
					line += "· "
				} else {
					line += "  "
				}
			}
		}

		lines[row+1] = line + "|"
	}

	lines[Size+1] = "+-----------------+"

	return lines
}

// String returns the black and white masks as 32 hex digits.
func (b Board) String() string {
	return fmt.Sprintf("%016x%016x", b.black, b.white)
}
