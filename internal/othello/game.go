package othello

import (
	"fmt"
	"strings"
)

// State is the lifecycle state of a Session.
type State int

const (
	InProgress State = iota
	GameOver
)

// String returns "in_progress" or "game_over".
func (s State) String() string {
	if s == GameOver {
		return "game_over"
	}
	return "in_progress"
}

// ParseState parses the output of State.String.
func ParseState(s string) (State, error) {
	switch s {
	case "in_progress":
		return InProgress, nil
	case "game_over":
		return GameOver, nil
	default:
		return InProgress, fmt.Errorf("invalid state: %q", s)
	}
}

// Opponent tells which color, if any, is played by the computer.
type Opponent int

const (
	OpponentNone Opponent = iota
	OpponentBlack
	OpponentWhite
)

// String returns "none", "black" or "white".
func (o Opponent) String() string {
	switch o {
	case OpponentBlack:
		return "black"
	case OpponentWhite:
		return "white"
	default:
		return "none"
	}
}

// ParseOpponent parses the output of Opponent.String.
func ParseOpponent(s string) (Opponent, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return OpponentNone, nil
	case "black", "b":
		return OpponentBlack, nil
	case "white", "w":
		return OpponentWhite, nil
	default:
		return OpponentNone, fmt.Errorf("invalid opponent: %q", s)
	}
}

// Plays checks if the computer plays p.
func (o Opponent) Plays(p Player) bool {
	return o == OpponentBlack && p == Black || o == OpponentWhite && p == White
}

// Result is the outcome of a game.
type Result int

const (
	Undecided Result = iota
	BlackWins
	WhiteWins
	Draw
)

var resultNames = []string{"undecided", "black_wins", "white_wins", "draw"}

// String returns the snake_case name of the result.
func (r Result) String() string {
	if r < Undecided || r > Draw {
		return fmt.Sprintf("result(%d)", int(r))
	}
	return resultNames[r]
}

// Message returns a human readable description of a finished game.
func (r Result) Message() string {
	switch r {
	case BlackWins:
		return "Black wins!"
	case WhiteWins:
		return "White wins!"
	case Draw:
		return "Draw!"
	default:
		return "Game in progress"
	}
}

// Session is a single game with an optional computer opponent.
// A Session is not safe for concurrent use.
type Session struct {
	// board is the current board
	board Board

	// turn is the player to act
	turn Player

	// state is either InProgress or GameOver
	state State

	// opponent tells which color the computer plays
	opponent Opponent

	// difficulty is the computer strength
	difficulty Difficulty

	// generation is increased on every change, pending computer moves compare against it.
	generation uint64
}

// NewSession creates a session at the start position with Black to move.
func NewSession() *Session {
	return &Session{
		board:      NewBoardStart(),
		turn:       Black,
		state:      InProgress,
		opponent:   OpponentNone,
		difficulty: Medium,
	}
}

// RestoreSession recreates a session from stored fields.
func RestoreSession(board Board, turn Player, state State, opponent Opponent, difficulty Difficulty, generation uint64) *Session {
	return &Session{
		board:      board,
		turn:       turn,
		state:      state,
		opponent:   opponent,
		difficulty: difficulty,
		generation: generation,
	}
}

// Board returns the current board.
func (s *Session) Board() Board {
	return s.board
}

// Turn returns the player to act.
func (s *Session) Turn() Player {
	return s.turn
}

// State returns the session state.
func (s *Session) State() State {
	return s.state
}

// IsOver checks if the game has ended.
func (s *Session) IsOver() bool {
	return s.state == GameOver
}

// Opponent returns the computer opponent setting.
func (s *Session) Opponent() Opponent {
	return s.opponent
}

// Difficulty returns the computer strength.
func (s *Session) Difficulty() Difficulty {
	return s.difficulty
}

// Generation returns the change counter.
func (s *Session) Generation() uint64 {
	return s.generation
}

// ValidMoves returns the legal moves of the player to act, or none after the game ended.
func (s *Session) ValidMoves() []Move {
	if s.IsOver() {
		return []Move{}
	}
	return s.board.ValidMoves(s.turn)
}

// Play applies a move of the player to act. Moves that are not legal and any
// move after the game ended are ignored, in which case false is returned.
func (s *Session) Play(row, col int) bool {
	if s.IsOver() || !s.board.IsValidMove(row, col, s.turn) {
		return false
	}

	mover := s.turn
	s.board = s.board.DoMove(row, col, mover)
	s.generation++

	switch {
	case s.board.HasMoves(mover.Opponent()):
		s.turn = mover.Opponent()
	case !s.board.HasMoves(mover):
		s.state = GameOver
	}

	// Otherwise the opponent passes and mover plays again.
	return true
}

// Restart resets the game. Computer settings are kept.
func (s *Session) Restart() {
	s.board = NewBoardStart()
	s.turn = Black
	s.state = InProgress
	s.generation++
}

// Configure changes the computer opponent and its strength.
func (s *Session) Configure(opponent Opponent, difficulty Difficulty) {
	s.opponent = opponent
	s.difficulty = difficulty
	s.generation++
}

// ComputerToMove checks if the computer should play the next move.
func (s *Session) ComputerToMove() bool {
	return !s.IsOver() && s.opponent.Plays(s.turn)
}

// PlayComputer lets selector pick and play a move for the player to act.
// It does nothing and returns false if it is not the computer's turn.
func (s *Session) PlayComputer(selector *Selector) (Move, bool) {
	if !s.ComputerToMove() {
		return NoMove, false
	}

	move, ok := selector.Move(s.board, s.turn, s.difficulty)
	if !ok {
		return NoMove, false
	}

	return move, s.Play(move.Row, move.Col)
}

// Score returns the number of black and white discs.
func (s *Session) Score() (black, white int) {
	return s.board.CountPieces()
}

// Result compares the disc counts of a finished game.
func (s *Session) Result() Result {
	if !s.IsOver() {
		return Undecided
	}

	black, white := s.board.CountPieces()
	switch {
	case black > white:
		return BlackWins
	case white > black:
		return WhiteWins
	default:
		return Draw
	}
}
