package scrollspy

import (
	"sync"
	"time"

	"github.com/alexdoe/portfolio-backend/internal/section"
)

// centerOffset places the activation threshold 40% down the viewport, so a
// section becomes active once its top has scrolled past that point.
const centerOffset = 0.4

// Tracker derives the currently viewed section from reported scroll
// positions. Recomputation is throttled with a trailing-edge timer: while a
// timer is pending further reports only refresh the latest position, and the
// single recomputation runs against that latest position when the timer
// fires.
type Tracker struct {
	registry *section.Registry
	layout   section.Layout
	interval time.Duration
	onChange func(id string)

	mu             sync.Mutex
	active         string
	scrollTop      float64
	viewportHeight float64
	timer          *time.Timer
	pending        bool
	stopped        bool
}

func NewTracker(registry *section.Registry, layout section.Layout, interval time.Duration, onChange func(id string)) *Tracker {
	return &Tracker{
		registry: registry,
		layout:   layout,
		interval: interval,
		onChange: onChange,
		active:   registry.First().ID,
	}
}

// Start runs one computation immediately so the active section is correct
// before any scrolling occurs.
func (that *Tracker) Start() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.recompute()
}

// Report feeds the current scroll position and viewport height into the
// tracker.
func (that *Tracker) Report(scrollTop, viewportHeight float64) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.stopped {
		return
	}

	that.scrollTop = scrollTop
	that.viewportHeight = viewportHeight

	if that.pending {
		return
	}

	that.pending = true
	that.timer = time.AfterFunc(that.interval, that.onThrottleExpired)
}

func (that *Tracker) onThrottleExpired() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.pending = false
	if that.stopped {
		return
	}

	that.recompute()
}

// Refresh recomputes immediately against the last reported position, for
// when the layout changed without a scroll event.
func (that *Tracker) Refresh() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.stopped {
		return
	}

	that.recompute()
}

// Active returns the id of the currently active section.
func (that *Tracker) Active() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.active
}

// Stop cancels any pending recomputation. No change callback fires after
// Stop returns.
func (that *Tracker) Stop() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.stopped = true
	if that.timer != nil {
		that.timer.Stop()
		that.timer = nil
	}
	that.pending = false
}

// recompute walks the registry in reverse order and activates the first
// section whose top offset is at or above the threshold, so the bottommost
// qualifying section wins. Sections without a measured anchor are skipped.
// When nothing qualifies the first section is active, which keeps the state
// well defined above every threshold. Callers must hold the lock.
func (that *Tracker) recompute() {
	threshold := that.scrollTop + that.viewportHeight*centerOffset

	current := that.registry.First().ID
	for _, s := range that.registry.Reversed() {
		top, ok := that.layout.SectionTop(s.ID)
		if !ok {
			continue
		}

		if top <= threshold {
			current = s.ID
			break
		}
	}

	if current == that.active {
		return
	}

	that.active = current
	if that.onChange != nil {
		that.onChange(current)
	}
}
