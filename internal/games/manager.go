package games

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/repository"
)

const (
	// DefaultAIDelay is the pause before the computer plays its move.
	DefaultAIDelay = 500 * time.Millisecond

	computerMoveTimeout = 2 * time.Second
	subscriberBuffer    = 16
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrComputerTurn = errors.New("computer is to move")
)

// pendingMove is a scheduled computer move. Its identity tells a fired timer
// whether it is still the one registered for the game.
type pendingMove struct {
	timer *time.Timer
}

// Store persists game records.
type Store interface {
	Save(ctx context.Context, record *models.GameRecord) error
	Load(ctx context.Context, id string) (*models.GameRecord, error)
	Delete(ctx context.Context, id string) error
}

// Manager owns all running games. It applies moves, lets the computer play
// after a delay and notifies subscribers of every change.
type Manager struct {
	store    Store
	selector *othello.Selector
	aiDelay  time.Duration

	// mutex protects all fields below and serialises every game update
	mutex sync.Mutex

	// timers holds the pending computer move per game id
	timers map[string]*pendingMove

	// subscribers holds the update channels per game id
	subscribers map[string]map[int]chan models.GameState

	nextSubscriberID int
	closed           bool
}

// NewManager creates a new Manager.
func NewManager(store Store, selector *othello.Selector, aiDelay time.Duration) *Manager {
	return &Manager{
		store:       store,
		selector:    selector,
		aiDelay:     aiDelay,
		timers:      make(map[string]*pendingMove),
		subscribers: make(map[string]map[int]chan models.GameState),
	}
}

func (m *Manager) load(ctx context.Context, id string) (*othello.Session, error) {
	record, err := m.store.Load(ctx, id)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load game %s: %w", id, err)
	}

	session, err := record.Session()
	if err != nil {
		return nil, fmt.Errorf("failed to restore game %s: %w", id, err)
	}

	return session, nil
}

// save stores the session, notifies subscribers and schedules the computer if it is to move.
// The caller must hold the mutex.
func (m *Manager) save(ctx context.Context, id string, session *othello.Session) (models.GameState, error) {
	if err := m.store.Save(ctx, models.NewGameRecord(id, session)); err != nil {
		return models.GameState{}, fmt.Errorf("failed to save game %s: %w", id, err)
	}

	state := models.NewGameState(id, session)
	m.publish(id, state)

	if session.ComputerToMove() {
		m.schedule(id, session.Generation())
	}

	return state, nil
}

// schedule starts a timer for the computer move. The move is dropped when the
// game changed in the meantime. The caller must hold the mutex.
func (m *Manager) schedule(id string, generation uint64) {
	if m.closed {
		return
	}

	m.cancelTimer(id)

	pending := &pendingMove{}
	pending.timer = time.AfterFunc(m.aiDelay, func() {
		m.playComputer(id, generation, pending)
	})
	m.timers[id] = pending
}

// cancelTimer stops a pending computer move. The caller must hold the mutex.
func (m *Manager) cancelTimer(id string) {
	if pending, ok := m.timers[id]; ok {
		pending.timer.Stop()
		delete(m.timers, id)
	}
}

func (m *Manager) playComputer(id string, generation uint64, pending *pendingMove) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.closed {
		return
	}

	// A newer schedule owns the entry otherwise.
	if m.timers[id] != pending {
		return
	}

	// The timer fired, so a later Get must be able to schedule again even if this move fails.
	delete(m.timers, id)

	ctx, cancel := context.WithTimeout(context.Background(), computerMoveTimeout)
	defer cancel()

	session, err := m.load(ctx, id)
	if err != nil {
		slog.Warn("Cannot load game for computer move", "game", id, "error", err)
		return
	}

	if session.Generation() != generation {
		slog.Debug("Discarding stale computer move", "game", id, "scheduled", generation, "current", session.Generation())
		return
	}

	move, ok := session.PlayComputer(m.selector)
	if !ok {
		return
	}

	slog.Debug("Computer played", "game", id, "move", move.String(), "difficulty", session.Difficulty().String())

	if _, err = m.save(ctx, id, session); err != nil {
		slog.Error("Cannot save computer move", "game", id, "error", err)
	}
}

// publish sends state to all subscribers of a game. Slow subscribers miss updates.
// The caller must hold the mutex.
func (m *Manager) publish(id string, state models.GameState) {
	for subscriberID, ch := range m.subscribers[id] {
		select {
		case ch <- state:
		default:
			slog.Warn("Dropping game update for slow subscriber", "game", id, "subscriber", subscriberID)
		}
	}
}

// Create starts a new game at the start position.
func (m *Manager) Create(ctx context.Context, opponent othello.Opponent, difficulty othello.Difficulty) (models.GameState, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	session := othello.RestoreSession(othello.NewBoardStart(), othello.Black, othello.InProgress, opponent, difficulty, 0)
	return m.save(ctx, uuid.NewString(), session)
}

// Get returns the state of a game.
func (m *Manager) Get(ctx context.Context, id string) (models.GameState, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	session, err := m.load(ctx, id)
	if err != nil {
		return models.GameState{}, err
	}

	// Games loaded from a shared store may wait for a computer move no timer exists for.
	if _, ok := m.timers[id]; !ok && session.ComputerToMove() {
		m.schedule(id, session.Generation())
	}

	return models.NewGameState(id, session), nil
}

// Move plays a move for the human player to act. Illegal moves leave the game
// unchanged and are reported by returning false.
func (m *Manager) Move(ctx context.Context, id string, row, col int) (models.GameState, bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	session, err := m.load(ctx, id)
	if err != nil {
		return models.GameState{}, false, err
	}

	if session.ComputerToMove() {
		return models.GameState{}, false, ErrComputerTurn
	}

	if !session.Play(row, col) {
		return models.NewGameState(id, session), false, nil
	}

	state, err := m.save(ctx, id, session)
	if err != nil {
		return models.GameState{}, false, err
	}

	return state, true, nil
}

// Restart resets a game to the start position. Any pending computer move is dropped.
func (m *Manager) Restart(ctx context.Context, id string) (models.GameState, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	session, err := m.load(ctx, id)
	if err != nil {
		return models.GameState{}, err
	}

	m.cancelTimer(id)
	session.Restart()

	return m.save(ctx, id, session)
}

// Configure changes the computer opponent of a game. Any pending computer move is dropped.
func (m *Manager) Configure(
	ctx context.Context, id string, opponent othello.Opponent, difficulty othello.Difficulty,
) (models.GameState, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	session, err := m.load(ctx, id)
	if err != nil {
		return models.GameState{}, err
	}

	m.cancelTimer(id)
	session.Configure(opponent, difficulty)

	return m.save(ctx, id, session)
}

// Delete removes a game and closes its subscriptions.
func (m *Manager) Delete(ctx context.Context, id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, err := m.load(ctx, id); err != nil {
		return err
	}

	m.cancelTimer(id)

	if err := m.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game %s: %w", id, err)
	}

	for _, ch := range m.subscribers[id] {
		close(ch)
	}
	delete(m.subscribers, id)

	return nil
}

// Subscribe returns the current state of a game and a channel receiving every
// later state. The channel is closed when cancel is called or the game is deleted.
func (m *Manager) Subscribe(ctx context.Context, id string) (models.GameState, <-chan models.GameState, func(), error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	session, err := m.load(ctx, id)
	if err != nil {
		return models.GameState{}, nil, nil, err
	}

	if m.closed {
		return models.GameState{}, nil, nil, errors.New("manager is closed")
	}

	subscriberID := m.nextSubscriberID
	m.nextSubscriberID++

	ch := make(chan models.GameState, subscriberBuffer)
	if m.subscribers[id] == nil {
		m.subscribers[id] = make(map[int]chan models.GameState)
	}
	m.subscribers[id][subscriberID] = ch

	cancel := func() {
		m.mutex.Lock()
		defer m.mutex.Unlock()

		// Delete and Close may have closed the channel already.
		if _, ok := m.subscribers[id][subscriberID]; ok {
			close(ch)
			delete(m.subscribers[id], subscriberID)
		}
	}

	return models.NewGameState(id, session), ch, cancel, nil
}

// Close stops all pending computer moves and closes all subscriptions.
func (m *Manager) Close() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.closed = true

	for id := range m.timers {
		m.cancelTimer(id)
	}

	for id, subscribers := range m.subscribers {
		for _, ch := range subscribers {
			close(ch)
		}
		delete(m.subscribers, id)
	}
}
