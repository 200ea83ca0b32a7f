package book

import "time"

// TurnDelay is how long a page turn animates before the index changes.
const TurnDelay = 800 * time.Millisecond

// Direction of a page turn.
type Direction int

const (
	None Direction = iota
	Next
	Prev
)

func (d Direction) String() string {
	switch d {
	case Next:
		return "next"
	case Prev:
		return "prev"
	default:
		return "none"
	}
}

// Turn identifies one started page turn. Pass it back to Finish once
// TurnDelay has elapsed.
type Turn struct {
	Direction  Direction
	generation uint64
}

// Navigator is the page-turn state machine. It is either Idle at an index or
// Animating from an index in a direction. The zero value is not usable; use
// NewNavigator.
type Navigator struct {
	index      int
	total      int
	animating  bool
	direction  Direction
	generation uint64
}

// NewNavigator returns a navigator idle at spread 0 of total spreads.
func NewNavigator(total int) *Navigator {
	n := &Navigator{}
	n.Reset(total)
	return n
}

// Index is the current spread. While animating it is the spread the turn
// started from.
func (n *Navigator) Index() int { return n.index }

// Total is the number of spreads, at least 1.
func (n *Navigator) Total() int { return n.total }

// Animating reports whether a turn is in progress.
func (n *Navigator) Animating() bool { return n.animating }

// Direction is the direction of the turn in progress, or None.
func (n *Navigator) Direction() Direction { return n.direction }

// CanNext reports whether Next would start a turn.
func (n *Navigator) CanNext() bool {
	return !n.animating && n.index < n.total-1
}

// CanPrev reports whether Prev would start a turn.
func (n *Navigator) CanPrev() bool {
	return !n.animating && n.index > 0
}

// Next starts a turn towards the following spread. It returns false and
// changes nothing while animating or on the last spread.
func (n *Navigator) Next() (Turn, bool) {
	if !n.CanNext() {
		return Turn{}, false
	}
	return n.start(Next), true
}

// Prev starts a turn towards the preceding spread. It returns false and
// changes nothing while animating or on the first spread.
func (n *Navigator) Prev() (Turn, bool) {
	if !n.CanPrev() {
		return Turn{}, false
	}
	return n.start(Prev), true
}

func (n *Navigator) start(d Direction) Turn {
	n.generation++
	n.animating = true
	n.direction = d
	return Turn{Direction: d, generation: n.generation}
}

// Finish completes turn t and reports whether it was applied. A turn that
// was superseded by Reset is ignored.
func (n *Navigator) Finish(t Turn) bool {
	if !n.animating || t.generation != n.generation {
		return false
	}

	switch t.Direction {
	case Next:
		n.index = min(n.index+1, n.total-1)
	case Prev:
		n.index = max(n.index-1, 0)
	}
	n.animating = false
	n.direction = None
	return true
}

// Reset returns to Idle at spread 0 with total spreads and invalidates any
// turn in flight.
func (n *Navigator) Reset(total int) {
	n.generation++
	n.index = 0
	n.total = max(1, total)
	n.animating = false
	n.direction = None
}
