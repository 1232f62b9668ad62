package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexdoe/portfolio-backend/internal/apperror"
	"github.com/alexdoe/portfolio-backend/internal/entity"
	"github.com/alexdoe/portfolio-backend/internal/service"
	"github.com/alexdoe/portfolio-backend/internal/tictactoe"
)

func (that *session) handleLayoutUpdate(payload json.RawMessage) error {
	var req LayoutPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	that.mu.Lock()
	that.offsets = make(map[string]float64, len(req.Sections))
	for id, top := range req.Sections {
		that.offsets[id] = top
	}
	that.mu.Unlock()

	// anchors moved, the active section may have changed without a scroll
	that.tracker.Refresh()

	return nil
}

func (that *session) handleScrollUpdate(payload json.RawMessage) error {
	var req ScrollPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	that.tracker.Report(req.Top, req.ViewportHeight)

	return nil
}

func (that *session) handleNavigate(payload json.RawMessage) error {
	var req NavigatePayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	// missing targets are a silent no-op inside the navigator
	that.navigator.ScrollToSection(req.Section)

	return nil
}

func (that *session) handleGameMove(payload json.RawMessage) error {
	var req MovePayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	that.mu.Lock()
	err := that.gameplay.VisitorMove(that.game, req.Cell)
	state := *that.game

	if err == nil && !that.game.IsFinished() && that.game.Turn == entity.PlayerO {
		if that.opponentTimer != nil {
			that.opponentTimer.Stop()
		}
		that.opponentTimer = time.AfterFunc(that.timings.OpponentDelay, that.opponentTurn)
	}
	that.mu.Unlock()

	if err != nil {
		return that.pushError(rejectionMessage(err))
	}

	return that.push(ActionGameState, state)
}

// opponentTurn fires after the thinking delay and applies the heuristic
// opponent's move.
func (that *session) opponentTurn() {
	that.mu.Lock()
	if that.closed {
		that.mu.Unlock()
		return
	}

	err := that.gameplay.OpponentMove(that.game)
	state := *that.game
	that.mu.Unlock()

	if err != nil {
		that.logger.Error("opponent move failed", "error", err)
		return
	}

	_ = that.push(ActionGameState, state)
}

func (that *session) handleGameReset(_ json.RawMessage) error {
	that.mu.Lock()
	if that.opponentTimer != nil {
		that.opponentTimer.Stop()
		that.opponentTimer = nil
	}
	that.gameplay.Reset(that.game)
	state := *that.game
	that.mu.Unlock()

	return that.push(ActionGameState, state)
}

func (that *session) handleRPSPlay(payload json.RawMessage) error {
	var req GesturePayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	that.mu.Lock()
	state, err := that.rps.Play(req.Gesture)
	that.mu.Unlock()

	if err != nil {
		return that.pushError(rejectionMessage(err))
	}

	return that.push(ActionRPSState, state)
}

func (that *session) handleRPSNext(_ json.RawMessage) error {
	that.mu.Lock()
	state := that.rps.NextRound()
	that.mu.Unlock()

	return that.push(ActionRPSState, state)
}

// handleModalClose delays the game teardown long enough for the close
// animation to finish. Scores survive; boards and rounds do not.
func (that *session) handleModalClose(_ json.RawMessage) error {
	that.mu.Lock()
	if that.opponentTimer != nil {
		that.opponentTimer.Stop()
		that.opponentTimer = nil
	}
	if that.teardownTimer != nil {
		that.teardownTimer.Stop()
	}
	that.teardownTimer = time.AfterFunc(that.timings.ModalCloseDelay, that.teardownGames)
	that.mu.Unlock()

	return nil
}

func (that *session) teardownGames() {
	that.mu.Lock()
	if that.closed {
		that.mu.Unlock()
		return
	}

	that.gameplay.Reset(that.game)
	that.rps.NextRound()
	that.mu.Unlock()
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That cell is already taken."
	case errors.Is(err, apperror.ErrNotYourTurn):
		return "It's not your turn."
	case errors.Is(err, apperror.ErrGameFinished):
		return "The game is over. Hit Play Again to start a new one."
	case errors.Is(err, tictactoe.ErrInvalidCell):
		return "That cell does not exist."
	case errors.Is(err, service.ErrInvalidGesture):
		return "Pick rock, paper, or scissors."
	case errors.Is(err, service.ErrRoundInProgress):
		return "Hit Next Round before playing again."
	default:
		return "That move is not allowed."
	}
}
