package terminal

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/lk16/reversi/internal/othello"
)

const helpText = `Commands:
  <field>   play a move, for example e3 (column letter, row digit)
  moves     list the legal moves
  restart   start a new game
  help      show this help
  quit      leave the game`

// Game plays a session in the terminal.
type Game struct {
	session  *othello.Session
	selector *othello.Selector
	renderer *Renderer
	out      io.Writer
}

// NewGame creates a new Game writing to out.
func NewGame(session *othello.Session, selector *othello.Selector, renderer *Renderer, out io.Writer) *Game {
	return &Game{
		session:  session,
		selector: selector,
		renderer: renderer,
		out:      out,
	}
}

// Session returns the session being played.
func (g *Game) Session() *othello.Session {
	return g.session
}

func (g *Game) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(g.out, format, args...)
}

func (g *Game) draw() {
	g.printf("%s\n", g.renderer.Session(g.session))
}

// Start draws the board, letting the computer open if it plays black.
func (g *Game) Start() {
	g.playComputer()
	g.draw()
}

// playComputer plays computer moves until a human is to act or the game ends.
func (g *Game) playComputer() {
	for g.session.ComputerToMove() {
		mover := g.session.Turn()

		move, ok := g.session.PlayComputer(g.selector)
		if !ok {
			return
		}

		g.printf("Computer plays %s\n", move)
		g.reportPass(mover)
	}
}

// reportPass tells the player when mover gets to play again.
func (g *Game) reportPass(mover othello.Player) {
	if !g.session.IsOver() && g.session.Turn() == mover {
		g.printf("%s has no moves and passes\n", playerName(mover.Opponent()))
	}
}

// Execute runs one command line. It returns false when the player quits.
func (g *Game) Execute(line string) bool {
	line = strings.ToLower(strings.TrimSpace(line))

	switch line {
	case "":
		return true
	case "quit", "exit", "q":
		return false
	case "help", "?":
		g.printf("%s\n", helpText)
		return true
	case "restart":
		g.session.Restart()
		g.Start()
		return true
	case "moves":
		g.printMoves()
		return true
	}

	move, err := othello.ParseMove(line)
	if err != nil {
		g.printf("Unknown command %q, type 'help' for commands\n", line)
		return true
	}

	g.play(move)
	return true
}

func (g *Game) printMoves() {
	moves := g.session.ValidMoves()
	if len(moves) == 0 {
		g.printf("No legal moves\n")
		return
	}

	fields := make([]string, len(moves))
	for i, move := range moves {
		fields[i] = move.String()
	}
	g.printf("Legal moves: %s\n", strings.Join(fields, " "))
}

func (g *Game) play(move othello.Move) {
	switch {
	case g.session.IsOver():
		g.printf("The game is over, type 'restart' for a new game\n")
		return
	case g.session.ComputerToMove():
		g.printf("It is the computer's turn\n")
		return
	}

	mover := g.session.Turn()
	if !g.session.Play(move.Row, move.Col) {
		g.printf("%s is not a legal move\n", move)
		return
	}

	g.reportPass(mover)
	g.playComputer()
	g.draw()
}

// Prompt returns the readline prompt for the current state.
func (g *Game) Prompt() string {
	if g.session.IsOver() {
		return "reversi [game over] > "
	}
	return fmt.Sprintf("reversi [%s] > ", g.session.Turn())
}

// Run reads commands from rl until the player quits or input ends.
func (g *Game) Run(rl *readline.Instance) error {
	g.Start()

	for {
		rl.SetPrompt(g.Prompt())

		line, err := rl.Readline()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if !g.Execute(line) {
			return nil
		}
	}
}
