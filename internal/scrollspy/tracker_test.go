package scrollspy

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexdoe/portfolio-backend/internal/entity"
	"github.com/alexdoe/portfolio-backend/internal/section"
)

const testInterval = 20 * time.Millisecond

type layoutStub struct {
	mu   sync.Mutex
	tops map[string]float64
}

func newLayoutStub(tops map[string]float64) *layoutStub {
	return &layoutStub{tops: tops}
}

func (that *layoutStub) SectionTop(id string) (float64, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	top, ok := that.tops[id]
	return top, ok
}

type changeRecorder struct {
	mu      sync.Mutex
	changes []string
}

func (that *changeRecorder) record(id string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.changes = append(that.changes, id)
}

func (that *changeRecorder) all() []string {
	that.mu.Lock()
	defer that.mu.Unlock()

	out := make([]string, len(that.changes))
	copy(out, that.changes)
	return out
}

func testRegistry() *section.Registry {
	return section.NewRegistry(
		entity.Section{ID: "home", Label: "Home"},
		entity.Section{ID: "about", Label: "About"},
		entity.Section{ID: "portfolio", Label: "Portfolio"},
	)
}

func TestTracker_Recompute(t *testing.T) {
	t.Run("Bottommost qualifying section wins", func(t *testing.T) {
		// Given: sections at offsets 0, 1000 and 2000 and a viewport of 800
		layout := newLayoutStub(map[string]float64{"home": 0, "about": 1000, "portfolio": 2000})
		rec := &changeRecorder{}
		tracker := NewTracker(testRegistry(), layout, testInterval, rec.record)
		tracker.Start()

		// When: the page reports a scroll offset of 700 (threshold 1020)
		tracker.Report(700, 800)
		time.Sleep(3 * testInterval)

		// Then: the section at offset 1000 is active, not the one at 2000
		require.Equal(t, "about", tracker.Active())
		assert.Equal(t, []string{"about"}, rec.all())
	})

	t.Run("Above every threshold defaults to the first section", func(t *testing.T) {
		// Given: every section starts below the viewport
		layout := newLayoutStub(map[string]float64{"home": 500, "about": 1000, "portfolio": 2000})
		rec := &changeRecorder{}
		tracker := NewTracker(testRegistry(), layout, testInterval, rec.record)
		tracker.Start()

		// When: the page reports the very top
		tracker.Report(0, 800)
		time.Sleep(3 * testInterval)

		// Then: the first section stays active and no change fires
		require.Equal(t, "home", tracker.Active())
		assert.Empty(t, rec.all())
	})

	t.Run("Missing anchors are skipped", func(t *testing.T) {
		// Given: the portfolio anchor is absent from the layout
		layout := newLayoutStub(map[string]float64{"home": 0, "about": 1000})
		rec := &changeRecorder{}
		tracker := NewTracker(testRegistry(), layout, testInterval, rec.record)
		tracker.Start()

		// When: the page scrolls far past everything
		tracker.Report(5000, 800)
		time.Sleep(3 * testInterval)

		// Then: the deepest measured section wins
		assert.Equal(t, "about", tracker.Active())
	})

	t.Run("Initial computation runs at start", func(t *testing.T) {
		// Given: a layout where the first section qualifies immediately
		layout := newLayoutStub(map[string]float64{"home": 0, "about": 1000, "portfolio": 2000})
		tracker := NewTracker(testRegistry(), layout, testInterval, nil)

		// When: the tracker starts with no scroll events at all
		tracker.Start()

		// Then: the active section is already correct
		assert.Equal(t, "home", tracker.Active())
	})
}

func TestTracker_Throttle(t *testing.T) {
	t.Run("Trailing edge recomputes once against the latest position", func(t *testing.T) {
		// Given: a running tracker
		layout := newLayoutStub(map[string]float64{"home": 0, "about": 1000, "portfolio": 2000})
		rec := &changeRecorder{}
		tracker := NewTracker(testRegistry(), layout, testInterval, rec.record)
		tracker.Start()

		// When: a burst of reports lands inside one throttle window
		tracker.Report(700, 800)
		tracker.Report(900, 800)
		tracker.Report(1700, 800)
		time.Sleep(3 * testInterval)

		// Then: a single recomputation ran, against the last position
		require.Equal(t, "portfolio", tracker.Active())
		assert.Equal(t, []string{"portfolio"}, rec.all())
	})

	t.Run("No change means no callback", func(t *testing.T) {
		// Given: a tracker already on the about section
		layout := newLayoutStub(map[string]float64{"home": 0, "about": 1000, "portfolio": 2000})
		rec := &changeRecorder{}
		tracker := NewTracker(testRegistry(), layout, testInterval, rec.record)
		tracker.Start()

		tracker.Report(700, 800)
		time.Sleep(3 * testInterval)
		require.Equal(t, []string{"about"}, rec.all())

		// When: another report maps to the same section
		tracker.Report(750, 800)
		time.Sleep(3 * testInterval)

		// Then: no redundant callback fires
		assert.Equal(t, []string{"about"}, rec.all())
	})
}

func TestTracker_Stop(t *testing.T) {
	// Given: a tracker with a pending recomputation
	layout := newLayoutStub(map[string]float64{"home": 0, "about": 1000, "portfolio": 2000})
	rec := &changeRecorder{}
	tracker := NewTracker(testRegistry(), layout, testInterval, rec.record)
	tracker.Start()

	tracker.Report(700, 800)

	// When: the tracker is stopped before the throttle timer fires
	tracker.Stop()
	time.Sleep(3 * testInterval)

	// Then: no callback fired and reports after stop are ignored
	assert.Empty(t, rec.all())

	tracker.Report(1700, 800)
	time.Sleep(3 * testInterval)
	assert.Empty(t, rec.all())
	assert.Equal(t, "home", tracker.Active())
}
