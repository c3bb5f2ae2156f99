package othello

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	session := NewSession()

	require.Equal(t, NewBoardStart(), session.Board())
	require.Equal(t, Black, session.Turn())
	require.Equal(t, InProgress, session.State())
	require.False(t, session.IsOver())
	require.Equal(t, Undecided, session.Result())
	require.Len(t, session.ValidMoves(), 4)
}

func TestSession_Play(t *testing.T) {
	session := NewSession()

	require.True(t, session.Play(2, 4))
	require.Equal(t, White, session.Turn())
	require.Equal(t, uint64(1), session.Generation())

	black, white := session.Score()
	require.Equal(t, 4, black)
	require.Equal(t, 1, white)

	// Playing the same square again is rejected since it is occupied.
	board := session.Board()
	require.False(t, session.Play(2, 4))
	require.Equal(t, board, session.Board())
	require.Equal(t, White, session.Turn())
	require.Equal(t, uint64(1), session.Generation())

	require.Equal(t, []Move{{2, 3}, {2, 5}, {4, 5}}, session.ValidMoves())
}

func TestSession_Play_Illegal(t *testing.T) {
	session := NewSession()

	require.False(t, session.Play(0, 0))
	require.False(t, session.Play(-1, 4))
	require.False(t, session.Play(3, 3))
	require.Equal(t, NewBoardStart(), session.Board())
	require.Equal(t, Black, session.Turn())
}

func TestSession_Play_OpponentPasses(t *testing.T) {
	board := newBoard(
		[][2]int{{0, 0}, {5, 0}},
		[][2]int{{0, 1}, {5, 1}},
	)
	session := RestoreSession(board, Black, InProgress, OpponentNone, Medium, 0)

	require.True(t, session.Play(0, 2))

	// White has no moves, so Black plays again.
	require.False(t, session.Board().HasMoves(White))
	require.Equal(t, Black, session.Turn())
	require.Equal(t, InProgress, session.State())

	require.True(t, session.Play(5, 2))
	require.True(t, session.IsOver())
	require.Equal(t, BlackWins, session.Result())
}

func TestSession_GameOver(t *testing.T) {
	session := RestoreSession(singleMoveBoard(), Black, InProgress, OpponentNone, Medium, 0)

	require.True(t, session.Play(0, 2))
	require.Equal(t, GameOver, session.State())

	black, white := session.Score()
	require.Equal(t, 3, black)
	require.Equal(t, 0, white)
	require.Equal(t, BlackWins, session.Result())
	require.Equal(t, "Black wins!", session.Result().Message())

	// Moves after the game ended are ignored.
	require.Empty(t, session.ValidMoves())
	require.False(t, session.Play(5, 5))
}

func TestSession_GameOver_Draw(t *testing.T) {
	board := newBoard(
		[][2]int{{0, 0}},
		[][2]int{{0, 1}, {7, 5}, {7, 6}, {7, 7}},
	)
	session := RestoreSession(board, Black, InProgress, OpponentNone, Medium, 0)

	require.True(t, session.Play(0, 2))
	require.True(t, session.IsOver())

	black, white := session.Score()
	require.Equal(t, black, white)
	require.Equal(t, Draw, session.Result())
	require.Equal(t, "Draw!", session.Result().Message())
}

func TestResult_String(t *testing.T) {
	require.Equal(t, "undecided", Undecided.String())
	require.Equal(t, "black_wins", BlackWins.String())
	require.Equal(t, "white_wins", WhiteWins.String())
	require.Equal(t, "draw", Draw.String())
	require.Equal(t, "result(7)", Result(7).String())
	require.Equal(t, "result(-1)", Result(-1).String())
}

func TestSession_GameOver_WhiteWins(t *testing.T) {
	board := newBoard([][2]int{{0, 1}}, [][2]int{{0, 0}, {7, 7}})
	session := RestoreSession(board, White, InProgress, OpponentNone, Medium, 0)

	require.True(t, session.Play(0, 2))
	require.True(t, session.IsOver())
	require.Equal(t, WhiteWins, session.Result())
}

func TestSession_FullGame(t *testing.T) {
	selector, err := NewSelector(1, 2, 11)
	require.NoError(t, err)

	session := NewSession()
	session.Configure(OpponentBlack, Medium)

	for !session.IsOver() {
		if session.ComputerToMove() {
			_, ok := session.PlayComputer(selector)
			require.True(t, ok)
			continue
		}

		move, ok := selector.Move(session.Board(), session.Turn(), Easy)
		require.True(t, ok)
		require.True(t, session.Play(move.Row, move.Col))
	}

	black, white := session.Score()
	require.False(t, session.Board().HasMoves(Black))
	require.False(t, session.Board().HasMoves(White))

	switch {
	case black > white:
		require.Equal(t, BlackWins, session.Result())
	case white > black:
		require.Equal(t, WhiteWins, session.Result())
	default:
		require.Equal(t, Draw, session.Result())
	}
}

func TestSession_Restart(t *testing.T) {
	session := RestoreSession(singleMoveBoard(), Black, InProgress, OpponentWhite, Hard, 5)
	require.True(t, session.Play(0, 2))
	require.True(t, session.IsOver())

	session.Restart()

	require.Equal(t, NewBoardStart(), session.Board())
	require.Equal(t, Black, session.Turn())
	require.Equal(t, InProgress, session.State())
	require.Equal(t, OpponentWhite, session.Opponent())
	require.Equal(t, Hard, session.Difficulty())
	require.Equal(t, uint64(7), session.Generation())
}

func TestSession_PlayComputer(t *testing.T) {
	selector, err := NewSelector(1, 1, 1)
	require.NoError(t, err)

	session := NewSession()

	// Nobody is played by the computer.
	_, ok := session.PlayComputer(selector)
	require.False(t, ok)

	session.Configure(OpponentWhite, Medium)
	require.False(t, session.ComputerToMove())

	require.True(t, session.Play(2, 4))
	require.True(t, session.ComputerToMove())

	move, ok := session.PlayComputer(selector)
	require.True(t, ok)
	require.Equal(t, Move{Row: 2, Col: 3}, move)
	require.Equal(t, Black, session.Turn())
}

func TestSession_PlayComputer_GameOver(t *testing.T) {
	session := RestoreSession(singleMoveBoard(), Black, InProgress, OpponentBlack, Easy, 0)

	move, ok := session.PlayComputer(NewDefaultSelector())
	require.True(t, ok)
	require.Equal(t, Move{Row: 0, Col: 2}, move)
	require.True(t, session.IsOver())
	require.False(t, session.ComputerToMove())
}

func TestParseState(t *testing.T) {
	for _, state := range []State{InProgress, GameOver} {
		parsed, err := ParseState(state.String())
		require.NoError(t, err)
		require.Equal(t, state, parsed)
	}

	_, err := ParseState("paused")
	require.Error(t, err)
}

func TestParseOpponent(t *testing.T) {
	for _, opponent := range []Opponent{OpponentNone, OpponentBlack, OpponentWhite} {
		parsed, err := ParseOpponent(opponent.String())
		require.NoError(t, err)
		require.Equal(t, opponent, parsed)
	}

	_, err := ParseOpponent("both")
	require.Error(t, err)

	require.True(t, OpponentBlack.Plays(Black))
	require.False(t, OpponentBlack.Plays(White))
	require.False(t, OpponentNone.Plays(Black))
}
