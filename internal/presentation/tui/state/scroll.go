package state

// ListPaneKey is the registry key for the list pane's scroll position.
const ListPaneKey = "internal://list"

// ScrollPosition is a mutable scroll token. For the detail pane the
// offset is the viewport's top line; for the list pane it is the
// selected index.
type ScrollPosition struct {
	Offset int
}

// ScrollRegistry remembers one scroll position per article that has
// ever been shown in the detail pane, plus one for the list pane.
// Entries live for the whole session and are keyed by id, so they
// survive snapshot replacement. Insertion is idempotent: the first
// access for a key allocates a default position, later accesses return
// the same token.
type ScrollRegistry struct {
	positions map[string]*ScrollPosition
}

// NewScrollRegistry creates an empty registry.
func NewScrollRegistry() *ScrollRegistry {
	return &ScrollRegistry{positions: make(map[string]*ScrollPosition)}
}

// For returns the scroll position for a key, allocating it on first
// access.
func (r *ScrollRegistry) For(key string) *ScrollPosition {
	if pos, ok := r.positions[key]; ok {
		return pos
	}
	pos := &ScrollPosition{}
	r.positions[key] = pos
	return pos
}

// Len returns the number of registered positions.
func (r *ScrollRegistry) Len() int {
	return len(r.positions)
}
