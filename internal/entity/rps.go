package entity

const (
	GestureRock     = "rock"
	GesturePaper    = "paper"
	GestureScissors = "scissors"
)

const (
	RoundPlayerWins   = "player"
	RoundOpponentWins = "opponent"
	RoundTie          = "tie"
)

// Gestures lists the valid options in the order the opponent draws from.
var Gestures = []string{GestureRock, GesturePaper, GestureScissors}

// RPSRound holds both choices of the current round; empty strings mean the
// round has not been played yet.
type RPSRound struct {
	Player   string `json:"player,omitempty"`
	Opponent string `json:"opponent,omitempty"`
	Outcome  string `json:"outcome,omitempty"`
}

// RPSScore counts decisive rounds. Counters only ever go up; a fresh session
// is the only way to start over.
type RPSScore struct {
	Player   int `json:"player"`
	Opponent int `json:"opponent"`
}

// Beats reports whether gesture a wins over gesture b under the standard
// dominance rule.
func Beats(a, b string) bool {
	switch {
	case a == GestureRock && b == GestureScissors:
		return true
	case a == GestureScissors && b == GesturePaper:
		return true
	case a == GesturePaper && b == GestureRock:
		return true
	default:
		return false
	}
}

func IsValidGesture(gesture string) bool {
	for _, g := range Gestures {
		if g == gesture {
			return true
		}
	}
	return false
}
