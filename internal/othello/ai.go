package othello

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"sync"
	"time"
)

// Difficulty selects how the computer picks its moves.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

var difficultyNames = []string{"easy", "medium", "hard"}

// String returns the lowercase name of the difficulty.
func (d Difficulty) String() string {
	if d < Easy || d > Hard {
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
	return difficultyNames[d]
}

// Valid checks that d is one of the known levels.
func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

// ParseDifficulty parses a difficulty name.
func ParseDifficulty(s string) (Difficulty, error) {
	for i, name := range difficultyNames {
		if strings.EqualFold(s, name) {
			return Difficulty(i), nil
		}
	}
	return Easy, fmt.Errorf("invalid difficulty: %q", s)
}

const (
	DefaultMediumDepth = 3
	DefaultHardDepth   = 6
)

// Evaluate returns the disc difference from the perspective of p.
func Evaluate(b Board, p Player) int {
	return b.Count(p) - b.Count(p.Opponent())
}

// Minimax searches depth plies ahead with toMove to play. Leaves are always
// scored for root, so maximizing alone decides between max and min nodes.
// Leaves return NoMove together with their score.
func Minimax(b Board, root, toMove Player, depth int, maximizing bool) (Move, int) {
	moves := b.ValidMoves(toMove)
	if depth == 0 || len(moves) == 0 {
		return NoMove, Evaluate(b, root)
	}

	bestMove := NoMove
	bestScore := math.MinInt
	if !maximizing {
		bestScore = math.MaxInt
	}

	for _, move := range moves {
		child := b.DoMove(move.Row, move.Col, toMove)
		_, score := Minimax(child, root, toMove.Opponent(), depth-1, !maximizing)

		if maximizing && score > bestScore || !maximizing && score < bestScore {
			bestScore = score
			bestMove = move
		}
	}

	return bestMove, bestScore
}

// Selector picks moves for the computer player.
type Selector struct {
	// depths maps Medium and Hard to a search depth.
	depths map[Difficulty]int

	// rng is used for the random moves at Easy level.
	rng *rand.Rand

	// rngMutex protects rng
	rngMutex sync.Mutex
}

// NewSelector creates a Selector with the given search depths and random seed.
func NewSelector(mediumDepth, hardDepth int, seed uint64) (*Selector, error) {
	if mediumDepth < 1 || hardDepth < 1 {
		return nil, fmt.Errorf("search depths must be at least 1, got %d and %d", mediumDepth, hardDepth)
	}

	return &Selector{
		depths: map[Difficulty]int{
			Medium: mediumDepth,
			Hard:   hardDepth,
		},
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), //nolint: gosec // not used for security
	}, nil
}

// NewDefaultSelector creates a Selector with the default depths and a time-based seed.
func NewDefaultSelector() *Selector {
	s, err := NewSelector(DefaultMediumDepth, DefaultHardDepth, uint64(time.Now().UnixNano()))
	if err != nil {
		panic(err)
	}
	return s
}

// Depth returns the search depth used for d. Easy has no search and returns 0.
func (s *Selector) Depth(d Difficulty) int {
	if d == Easy {
		return 0
	}
	if depth, ok := s.depths[d]; ok {
		return depth
	}
	return s.depths[Hard]
}

// Move selects a move for p. If p has no legal moves it returns NoMove and false.
func (s *Selector) Move(b Board, p Player, d Difficulty) (Move, bool) {
	moves := b.ValidMoves(p)
	if len(moves) == 0 {
		return NoMove, false
	}

	if d == Easy {
		s.rngMutex.Lock()
		defer s.rngMutex.Unlock()
		return moves[s.rng.IntN(len(moves))], true
	}

	move, _ := Minimax(b, p, p, s.Depth(d), true)
	if move.IsNone() {
		return moves[0], true
	}
	return move, true
}

var defaultSelector = NewDefaultSelector()

// AIMove selects a move for p using the default search depths.
func AIMove(b Board, p Player, d Difficulty) (Move, bool) {
	return defaultSelector.Move(b, p, d)
}
