package websocket

import "encoding/json"

// Message is the envelope for every frame in both directions.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Client-to-server actions.
const (
	ActionLayoutUpdate = "layout:update"
	ActionScrollUpdate = "scroll:update"
	ActionNavigate     = "nav:go"
	ActionGameMove     = "game:move"
	ActionGameReset    = "game:reset"
	ActionRPSPlay      = "rps:play"
	ActionRPSNext      = "rps:next"
	ActionModalClose   = "modal:close"
)

// Server-to-client actions.
const (
	ActionSectionActive = "section:active"
	ActionNavScroll     = "nav:scroll"
	ActionGameState     = "game:state"
	ActionRPSState      = "rps:state"
	ActionError         = "error"
)

type LayoutPayload struct {
	// Sections maps section ids to their top offsets in document
	// coordinates; anchors absent from the page are simply omitted.
	Sections map[string]float64 `json:"sections"`
}

type ScrollPayload struct {
	Top            float64 `json:"top"`
	ViewportHeight float64 `json:"viewport_height"`
}

type NavigatePayload struct {
	Section string `json:"section"`
}

type MovePayload struct {
	Cell int `json:"cell"`
}

type GesturePayload struct {
	Gesture string `json:"gesture"`
}

type ActiveSectionPayload struct {
	Section string `json:"section"`
}

type ScrollCommandPayload struct {
	Top      float64 `json:"top"`
	Behavior string  `json:"behavior"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
