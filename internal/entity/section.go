package entity

// Section is a named, navigable region of the single-page layout. Registry
// order defines both the navigation display order and the scroll-spy
// tie-break priority.
type Section struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
