package wireframe

import "fmt"

// Axis is the direction along which a container places its children.
// Vertical is the zero value: every container kind except row stacks
// its children top to bottom.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// UnknownKindError reports a component kind outside the closed set.
// The original renderers disagreed here (some paths defaulted unknown
// kinds to vertical, others crashed); the engine rejects them uniformly.
type UnknownKindError struct {
	Kind Kind
	ID   string
}

// Error implements the error interface.
func (e *UnknownKindError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("unknown component kind %q on node %q", e.Kind, e.ID)
	}
	return fmt.Sprintf("unknown component kind %q", e.Kind)
}

// Axis resolves the main-axis orientation for a kind. Rows are
// horizontal; every other container kind, and every leaf kind, is
// vertical. Kinds outside the closed set return UnknownKindError.
func (k Kind) Axis() (Axis, error) {
	switch k {
	case KindRow:
		return Horizontal, nil
	case KindScreen, KindColumn, KindCard:
		return Vertical, nil
	case KindText, KindButton, KindInput, KindImage, KindIcon, KindDivider:
		// Leaves have no children to distribute; vertical is the
		// documented answer if anyone asks.
		return Vertical, nil
	default:
		return Vertical, &UnknownKindError{Kind: k}
	}
}
