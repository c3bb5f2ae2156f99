package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
)

const columnLabels = "  a b c d e f g h"

type styles struct {
	black  lipgloss.Style
	white  lipgloss.Style
	hint   lipgloss.Style
	label  lipgloss.Style
	status lipgloss.Style
	frame  lipgloss.Style
}

// newStyles creates the styles of a theme. Unknown themes fall back to light.
func newStyles(lr *lipgloss.Renderer, theme string) styles {
	if theme == models.ThemeDark {
		return styles{
			black:  lr.NewStyle().Foreground(lipgloss.Color("240")).Bold(true),
			white:  lr.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
			hint:   lr.NewStyle().Foreground(lipgloss.Color("11")),
			label:  lr.NewStyle().Foreground(lipgloss.Color("243")),
			status: lr.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
			frame:  lr.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1),
		}
	}

	return styles{
		black:  lr.NewStyle().Foreground(lipgloss.Color("0")).Bold(true),
		white:  lr.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		hint:   lr.NewStyle().Foreground(lipgloss.Color("3")),
		label:  lr.NewStyle().Foreground(lipgloss.Color("245")),
		status: lr.NewStyle().Bold(true),
		frame:  lr.NewStyle().Background(lipgloss.Color("22")).Padding(0, 1),
	}
}

// Renderer draws boards and game status for the terminal.
type Renderer struct {
	styles styles
}

// NewRenderer creates a Renderer for a theme. Colors are only used when out is a terminal.
func NewRenderer(theme string, out io.Writer) *Renderer {
	return &Renderer{styles: newStyles(lipgloss.NewRenderer(out), theme)}
}

// Board draws the board with labels. Squares in hints are marked.
func (r *Renderer) Board(b othello.Board, hints []othello.Move) string {
	hinted := make(map[othello.Move]bool, len(hints))
	for _, move := range hints {
		hinted[move] = true
	}

	lines := make([]string, 0, othello.Size+1)
	lines = append(lines, r.styles.label.Render(columnLabels))

	for row := range othello.Size {
		var line strings.Builder
		line.WriteString(r.styles.label.Render(fmt.Sprintf("%d", row+1)))

		for col := range othello.Size {
			line.WriteString(" ")

			switch b.Cell(row, col) {
			case othello.BlackDisc:
				line.WriteString(r.styles.black.Render("●"))
			case othello.WhiteDisc:
				line.WriteString(r.styles.white.Render("○"))
			default:
				if hinted[othello.Move{Row: row, Col: col}] {
					line.WriteString(r.styles.hint.Render("·"))
				} else {
					line.WriteString(" ")
				}
			}
		}

		lines = append(lines, line.String())
	}

	return r.styles.frame.Render(strings.Join(lines, "\n"))
}

// Status describes whose turn it is, or the result, and the score.
func (r *Renderer) Status(s *othello.Session) string {
	black, white := s.Score()
	score := fmt.Sprintf("Black %d - %d White", black, white)

	if s.IsOver() {
		return r.styles.status.Render(s.Result().Message() + "  " + score)
	}

	turn := playerName(s.Turn()) + " to move"
	if s.ComputerToMove() {
		turn += " (computer)"
	}

	return r.styles.status.Render(turn + "  " + score)
}

// Session draws the board with the legal moves and the status line below it.
func (r *Renderer) Session(s *othello.Session) string {
	var hints []othello.Move
	if !s.ComputerToMove() {
		hints = s.ValidMoves()
	}

	return lipgloss.JoinVertical(lipgloss.Left, r.Board(s.Board(), hints), r.Status(s))
}

func playerName(p othello.Player) string {
	if p == othello.Black {
		return "Black"
	}
	return "White"
}
