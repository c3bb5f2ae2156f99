package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/lk16/reversi/internal/games"
	"github.com/lk16/reversi/internal/models"
)

const (
	requestTimeout = 2 * time.Second
)

// Handler serves one websocket connection following a single game.
type Handler struct {
	games  *games.Manager
	ws     *websocket.Conn
	gameID string
}

// NewHandler creates a new Handler.
func NewHandler(ws *websocket.Conn, manager *games.Manager, gameID string) *Handler {
	return &Handler{games: manager, ws: ws, gameID: gameID}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", msg)

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

// readLoop forwards incoming messages until reading fails or done is closed.
func (h *Handler) readLoop(requests chan<- *Incoming, readErr chan<- error, done <-chan struct{}) {
	for {
		req, err := h.readMessage()
		if err != nil {
			readErr <- err
			return
		}

		select {
		case requests <- req:
		case <-done:
			return
		}
	}
}

// Handle sends the game state, then pushes every change and answers requests
// until the connection or the game goes away.
func (h *Handler) Handle() error {
	ctx, cancelCtx := context.WithTimeout(context.Background(), requestTimeout)
	current, updates, cancel, err := h.games.Subscribe(ctx, h.gameID)
	cancelCtx()

	if err != nil {
		_ = h.writeMessage(&Outgoing{Event: EventError, Error: err.Error()})
		return fmt.Errorf("ws subscribe error: %w", err)
	}
	defer cancel()

	if err = h.writeMessage(&Outgoing{Event: EventState, Data: current}); err != nil {
		return fmt.Errorf("ws write error: %w", err)
	}

	requests := make(chan *Incoming)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go h.readLoop(requests, readErr, done)

	for {
		var outgoing *Outgoing

		select {
		case state, ok := <-updates:
			if !ok {
				// game was deleted
				return nil
			}
			outgoing = &Outgoing{Event: EventState, Data: state}
		case req := <-requests:
			outgoing = h.handleMessage(req)
		case err = <-readErr:
			return fmt.Errorf("ws read error: %w", err)
		}

		if err = h.writeMessage(outgoing); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

// handleMessage runs a request against the game. Failures are reported to the
// client and keep the connection open.
func (h *Handler) handleMessage(req *Incoming) *Outgoing {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	var (
		data any
		err  error
	)

	switch req.Event {
	case "":
		err = errors.New("event field is either empty or missing")
	case EventMove:
		data, err = h.handleMove(ctx, req)
	case EventRestart:
		data, err = h.games.Restart(ctx, h.gameID)
	default:
		err = fmt.Errorf("unknown event: %s", req.Event)
	}

	if err != nil {
		return &Outgoing{ID: req.ID, Event: EventError, Error: err.Error()}
	}

	return &Outgoing{ID: req.ID, Event: req.Event, Data: data}
}

func (h *Handler) handleMove(ctx context.Context, req *Incoming) (*models.MoveResponse, error) {
	var reqData models.MoveRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws move request unmarshal error: %w", err)
	}

	if err := models.Validate(&reqData); err != nil {
		return nil, err
	}

	state, applied, err := h.games.Move(ctx, h.gameID, *reqData.Row, *reqData.Col)
	if err != nil {
		return nil, err
	}

	return &models.MoveResponse{GameState: state, Applied: applied}, nil
}
