package section

import (
	"github.com/alexdoe/portfolio-backend/internal/entity"
)

// Registry is the ordered, immutable list of navigable sections. The order
// drives navigation rendering and the scroll-spy tie-break.
type Registry struct {
	sections []entity.Section
	index    map[string]int
}

func NewRegistry(sections ...entity.Section) *Registry {
	index := make(map[string]int, len(sections))
	for i, s := range sections {
		index[s.ID] = i
	}

	return &Registry{
		sections: sections,
		index:    index,
	}
}

// DefaultRegistry returns the sections of the portfolio page in display order.
func DefaultRegistry() *Registry {
	return NewRegistry(
		entity.Section{ID: "home", Label: "Home"},
		entity.Section{ID: "about", Label: "About"},
		entity.Section{ID: "portfolio", Label: "Portfolio"},
		entity.Section{ID: "faq", Label: "FAQ"},
		entity.Section{ID: "contact", Label: "Contact"},
	)
}

// All returns the sections in registration order.
func (that *Registry) All() []entity.Section {
	out := make([]entity.Section, len(that.sections))
	copy(out, that.sections)
	return out
}

// Reversed returns the sections in reverse registration order, the scan order
// used by the scroll-spy so the bottommost qualifying section wins.
func (that *Registry) Reversed() []entity.Section {
	out := make([]entity.Section, len(that.sections))
	for i, s := range that.sections {
		out[len(that.sections)-1-i] = s
	}
	return out
}

func (that *Registry) First() entity.Section {
	return that.sections[0]
}

func (that *Registry) Contains(id string) bool {
	_, ok := that.index[id]
	return ok
}

func (that *Registry) Len() int {
	return len(that.sections)
}
