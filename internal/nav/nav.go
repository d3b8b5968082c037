// Package nav resolves collection positions and navigation moves for the lightbox.
package nav

// Direction is a navigation move relative to the current position.
type Direction int

const (
	// Prev moves one position backwards in collection order.
	Prev Direction = iota
	// Next moves one position forwards in collection order.
	Next
)

func (d Direction) String() string {
	if d == Prev {
		return "prev"
	}
	return "next"
}

// ResolveIndex returns the first position of id in collection, or -1 when id is
// empty, the collection is empty, or id does not appear in it.
func ResolveIndex(id string, collection []string) int {
	if id == "" {
		return -1
	}
	for i, c := range collection {
		if c == id {
			return i
		}
	}
	return -1
}

// NextIndex returns the circular neighbour of current in the given direction.
// Wraparound is unconditional; there is no clamping at either end.
// Callers must not invoke it with length 0 or current -1.
func NextIndex(current int, d Direction, length int) int {
	if d == Prev {
		return (current - 1 + length) % length
	}
	return (current + 1) % length
}

// Strategy decides who owns the index when a navigation intent arrives.
// It is selected once per controller instance.
type Strategy interface {
	// Advance reacts to a navigation intent. When ok is true the caller adopts
	// the returned identifier and index; when false the caller must not mutate
	// its own navigation state.
	Advance(d Direction, index int, collection []string) (id string, idx int, ok bool)
}

// SelfManaged computes the next position locally with circular wraparound.
type SelfManaged struct{}

// Advance steps the index within the collection. Unresolvable positions and
// empty collections yield ok=false so navigation degrades to a no-op.
func (SelfManaged) Advance(d Direction, index int, collection []string) (string, int, bool) {
	if len(collection) == 0 || index < 0 || index >= len(collection) {
		return "", -1, false
	}
	idx := NextIndex(index, d, len(collection))
	return collection[idx], idx, true
}

// Delegated forwards navigation intents to an external owner. The owner is
// authoritative for what "current" means next and pushes the resulting
// identifier back in through the controller's props.
type Delegated struct {
	Notify func(Direction)
}

// Advance notifies the delegate and reports ok=false so the caller leaves its
// own index untouched.
func (s Delegated) Advance(d Direction, _ int, _ []string) (string, int, bool) {
	if s.Notify != nil {
		s.Notify(d)
	}
	return "", -1, false
}
