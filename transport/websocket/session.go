package websocket

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/alexdoe/portfolio-backend/internal/config"
	"github.com/alexdoe/portfolio-backend/internal/entity"
	"github.com/alexdoe/portfolio-backend/internal/scrollspy"
	"github.com/alexdoe/portfolio-backend/internal/section"
	"github.com/alexdoe/portfolio-backend/internal/service"
)

// session is the server-side state of one connected page: the scroll-spy
// tracker, the navigator, and both mini-game engines. Everything it owns
// dies with the connection; the teardown cancels every outstanding timer so
// nothing fires against a defunct session.
type session struct {
	id     string
	logger *slog.Logger
	conn   *websocket.Conn

	gameplay service.GamePlayService
	timings  config.Site

	tracker   *scrollspy.Tracker
	navigator *section.Navigator

	writeMu sync.Mutex

	mu            sync.Mutex
	offsets       map[string]float64
	game          *entity.Game
	rps           *service.RPSEngine
	opponentTimer *time.Timer
	teardownTimer *time.Timer
	closed        bool
}

func newSession(logger *slog.Logger, conn *websocket.Conn, registry *section.Registry, gameplay service.GamePlayService, rps *service.RPSEngine, timings config.Site) *session {
	sess := &session{
		id:       uuid.NewString(),
		conn:     conn,
		gameplay: gameplay,
		timings:  timings,
		offsets:  make(map[string]float64),
		game:     gameplay.NewGame(),
		rps:      rps,
	}

	sess.logger = logger.With("session", sess.id)
	sess.tracker = scrollspy.NewTracker(registry, sess, timings.ScrollThrottle, sess.onActiveSectionChange)
	sess.navigator = section.NewNavigator(registry, sess, sess)

	return sess
}

// start runs the initial scroll-spy computation and pushes the starting
// state of every surface.
func (that *session) start() {
	that.tracker.Start()

	_ = that.push(ActionSectionActive, ActiveSectionPayload{Section: that.tracker.Active()})
	_ = that.push(ActionGameState, that.gameState())
	_ = that.push(ActionRPSState, that.rpsState())
}

// SectionTop implements section.Layout from the offsets the page last
// reported. Unmeasured anchors do not resolve.
func (that *session) SectionTop(id string) (float64, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	top, ok := that.offsets[id]
	return top, ok
}

// ScrollTo implements section.Viewport by instructing the page to smooth
// scroll.
func (that *session) ScrollTo(top float64) {
	_ = that.push(ActionNavScroll, ScrollCommandPayload{Top: top, Behavior: "smooth"})
}

func (that *session) onActiveSectionChange(id string) {
	_ = that.push(ActionSectionActive, ActiveSectionPayload{Section: id})
}

func (that *session) push(action string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	if err = that.conn.WriteJSON(Message{Action: action, Payload: raw}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *session) pushError(message string) error {
	return that.push(ActionError, ErrorPayload{Message: message})
}

func (that *session) gameState() entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	return *that.game
}

func (that *session) rpsState() service.RPSState {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rps.State()
}

// close tears the session down exactly once. The tracker is stopped outside
// the session lock; its callback acquires the layout through SectionTop and
// the two locks must not be held together.
func (that *session) close() {
	that.mu.Lock()
	if that.closed {
		that.mu.Unlock()
		return
	}
	that.closed = true

	if that.opponentTimer != nil {
		that.opponentTimer.Stop()
		that.opponentTimer = nil
	}
	if that.teardownTimer != nil {
		that.teardownTimer.Stop()
		that.teardownTimer = nil
	}
	that.mu.Unlock()

	that.tracker.Stop()

	if err := that.conn.Close(); err != nil {
		that.logger.Debug("failed to close connection", "error", err)
	}
}
