package section

// Layout exposes the vertical top offset of each section anchor in document
// coordinates. The browser owns the measurements and reports them; absent
// anchors simply do not resolve.
type Layout interface {
	SectionTop(id string) (float64, bool)
}

// Viewport accepts scroll commands addressed to the browser viewport.
type Viewport interface {
	ScrollTo(top float64)
}

// Navigator translates a navigation intent into a smooth scroll to the
// target section's anchor.
type Navigator struct {
	registry *Registry
	layout   Layout
	viewport Viewport
}

func NewNavigator(registry *Registry, layout Layout, viewport Viewport) *Navigator {
	return &Navigator{
		registry: registry,
		layout:   layout,
		viewport: viewport,
	}
}

// ScrollToSection scrolls the viewport to the given section. A mistyped id or
// a conditionally absent anchor is a silent no-op; navigation must never
// surface an error.
func (that *Navigator) ScrollToSection(id string) {
	if !that.registry.Contains(id) {
		return
	}

	top, ok := that.layout.SectionTop(id)
	if !ok {
		return
	}

	that.viewport.ScrollTo(top)
}
