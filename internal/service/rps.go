package service

import (
	"errors"
	"fmt"

	"github.com/alexdoe/portfolio-backend/internal/entity"
)

var (
	ErrInvalidGesture  = errors.New("invalid gesture")
	ErrRoundInProgress = errors.New("round already played, start the next round first")
)

// RPSState is what the presentation surface renders: the visible round and
// the running score.
type RPSState struct {
	Round entity.RPSRound `json:"round"`
	Score entity.RPSScore `json:"score"`
}

// RPSEngine plays single rounds of rock-paper-scissors against a uniformly
// random opponent. The score outlives rounds; it lasts as long as the engine,
// which is scoped to one visitor session.
type RPSEngine struct {
	rnd   randSource
	round entity.RPSRound
	score entity.RPSScore
}

func NewRPSEngine(rnd randSource) *RPSEngine {
	return &RPSEngine{
		rnd: rnd,
	}
}

// Play resolves one round: the opponent draws uniformly at random, the
// standard dominance rule decides the outcome, and the winner's counter goes
// up by exactly one. Ties change neither counter. The round stays visible
// until NextRound.
func (that *RPSEngine) Play(gesture string) (RPSState, error) {
	if !entity.IsValidGesture(gesture) {
		return that.State(), fmt.Errorf("%w: %q", ErrInvalidGesture, gesture)
	}

	if that.round.Player != "" {
		return that.State(), ErrRoundInProgress
	}

	opponent := entity.Gestures[that.rnd.Intn(len(entity.Gestures))]

	that.round = entity.RPSRound{
		Player:   gesture,
		Opponent: opponent,
	}

	switch {
	case gesture == opponent:
		that.round.Outcome = entity.RoundTie
	case entity.Beats(gesture, opponent):
		that.round.Outcome = entity.RoundPlayerWins
		that.score.Player++
	default:
		that.round.Outcome = entity.RoundOpponentWins
		that.score.Opponent++
	}

	return that.State(), nil
}

// NextRound clears the visible round back to the unset state. Scores persist.
func (that *RPSEngine) NextRound() RPSState {
	that.round = entity.RPSRound{}
	return that.State()
}

func (that *RPSEngine) State() RPSState {
	return RPSState{
		Round: that.round,
		Score: that.score,
	}
}
