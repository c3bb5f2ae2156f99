package terminal

import (
	"bytes"
	"testing"

	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, session *othello.Session) (*Game, *bytes.Buffer) {
	t.Helper()

	selector, err := othello.NewSelector(1, 2, 3)
	require.NoError(t, err)

	var out bytes.Buffer
	return NewGame(session, selector, NewRenderer(models.ThemeLight, &out), &out), &out
}

func restore(t *testing.T, board string, turn othello.Player) *othello.Session {
	t.Helper()

	b, err := othello.NewBoardFromString(board)
	require.NoError(t, err)

	return othello.RestoreSession(b, turn, othello.InProgress, othello.OpponentNone, othello.Medium, 0)
}

func TestGame_Commands(t *testing.T) {
	game, out := newTestGame(t, othello.NewSession())

	require.True(t, game.Execute("help"))
	assert.Contains(t, out.String(), "Commands:")

	out.Reset()
	require.True(t, game.Execute("moves"))
	assert.Equal(t, "Legal moves: e3 f4 c5 d6\n", out.String())

	out.Reset()
	require.True(t, game.Execute("resign"))
	assert.Contains(t, out.String(), `Unknown command "resign"`)

	out.Reset()
	require.True(t, game.Execute("   "))
	assert.Empty(t, out.String())

	require.False(t, game.Execute("quit"))
	require.False(t, game.Execute("EXIT"))
}

func TestGame_Play(t *testing.T) {
	game, out := newTestGame(t, othello.NewSession())

	require.True(t, game.Execute("E3"))
	assert.Contains(t, out.String(), "White to move  Black 4 - 1 White")
	assert.Equal(t, othello.White, game.Session().Turn())
	assert.Equal(t, "reversi [white] > ", game.Prompt())

	out.Reset()
	require.True(t, game.Execute("a1"))
	assert.Equal(t, "a1 is not a legal move\n", out.String())
}

func TestGame_ComputerReplies(t *testing.T) {
	session := othello.NewSession()
	session.Configure(othello.OpponentWhite, othello.Medium)

	game, out := newTestGame(t, session)

	require.True(t, game.Execute("e3"))
	assert.Contains(t, out.String(), "Computer plays ")
	assert.Equal(t, othello.Black, session.Turn())
	assert.Equal(t, 6, session.Board().CountDiscs())
}

func TestGame_ComputerOpens(t *testing.T) {
	session := othello.NewSession()
	session.Configure(othello.OpponentBlack, othello.Hard)

	game, out := newTestGame(t, session)

	require.True(t, game.Execute("e3"))
	assert.Equal(t, "It is the computer's turn\n", out.String())

	out.Reset()
	game.Start()
	assert.Contains(t, out.String(), "Computer plays ")
	assert.Equal(t, othello.White, session.Turn())

	out.Reset()
	require.True(t, game.Execute("restart"))
	assert.Contains(t, out.String(), "Computer plays ")
	assert.Equal(t, 5, session.Board().CountDiscs())
}

func TestGame_Pass(t *testing.T) {
	game, out := newTestGame(t, restore(t, "00000100000000010000020000000002", othello.Black))

	require.True(t, game.Execute("c1"))
	assert.Contains(t, out.String(), "White has no moves and passes")
	assert.Equal(t, othello.Black, game.Session().Turn())
}

func TestGame_Over(t *testing.T) {
	game, out := newTestGame(t, restore(t, "00000000000000010000000000000002", othello.Black))

	require.True(t, game.Execute("c1"))
	assert.Contains(t, out.String(), "Black wins!")
	assert.Equal(t, "reversi [game over] > ", game.Prompt())

	out.Reset()
	require.True(t, game.Execute("d1"))
	assert.Equal(t, "The game is over, type 'restart' for a new game\n", out.String())

	out.Reset()
	require.True(t, game.Execute("moves"))
	assert.Equal(t, "No legal moves\n", out.String())
}
