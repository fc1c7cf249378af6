// Package wireframe computes pixel bounds for wireframe component trees.
//
// A wireframe is a tree of abstract UI components: screens contain rows,
// columns and cards, which in turn contain leaf components such as text,
// buttons and inputs. Given a component tree and an available rectangle,
// the engine assigns every node an absolute bounds rectangle using a
// two-pass flex distribution: fixed-size children are measured first,
// the remaining main-axis space is split among flexible children by
// weight, and cross-axis placement follows each child's alignment.
//
// The engine is a pure computation: it performs no text measurement, no
// drawing, and no I/O, and it never mutates its input tree. The same tree
// and bounds always produce the same placements, which is what lets a
// browser renderer and a server-side renderer agree on every pixel.
//
// # Usage
//
// Lay out a single screen:
//
//	placements, err := wireframe.LayoutAll(root, wireframe.Rect{Width: 375, Height: 640})
//	if err != nil {
//	    return err
//	}
//	for _, p := range placements {
//	    draw(p.Component, p.Bounds)
//	}
//
// Size a multi-screen canvas first:
//
//	frame := wireframe.Frame{Viewport: wireframe.ViewportNarrow, Arrangement: wireframe.SideBySide}
//	dims, err := frame.Dimensions(len(screens))
package wireframe

// =============================================================================
// Kind - Component Discriminant
// =============================================================================

// Kind identifies a component variant. The set is closed: anything outside
// it is rejected with UnknownKindError rather than silently defaulted.
type Kind string

// Container kinds. Containers own an ordered child list and distribute
// their content area among the children.
const (
	KindScreen Kind = "screen"
	KindColumn Kind = "column"
	KindRow    Kind = "row"
	KindCard   Kind = "card"
)

// Leaf kinds. Leaves accept whatever bounds their parent assigns.
const (
	KindText    Kind = "text"
	KindButton  Kind = "button"
	KindInput   Kind = "input"
	KindImage   Kind = "image"
	KindIcon    Kind = "icon"
	KindDivider Kind = "divider"
)

// containerKinds is the closed set of kinds that may carry children.
var containerKinds = map[Kind]bool{
	KindScreen: true,
	KindColumn: true,
	KindRow:    true,
	KindCard:   true,
}

// leafKinds is the closed set of terminal kinds.
var leafKinds = map[Kind]bool{
	KindText:    true,
	KindButton:  true,
	KindInput:   true,
	KindImage:   true,
	KindIcon:    true,
	KindDivider: true,
}

// IsContainer returns true for kinds that distribute children.
func (k Kind) IsContainer() bool { return containerKinds[k] }

// IsLeaf returns true for terminal kinds.
func (k Kind) IsLeaf() bool { return leafKinds[k] }

// Known returns true if k belongs to the closed kind set.
func (k Kind) Known() bool { return containerKinds[k] || leafKinds[k] }

// =============================================================================
// Alignment - Cross-Axis Placement
// =============================================================================

// Align governs where a child sits along the cross axis when it is
// smaller than the container's content area.
type Align string

const (
	AlignStart  Align = "start"
	AlignCenter Align = "center"
	AlignEnd    Align = "end"
)

// =============================================================================
// Component - Tree Node
// =============================================================================

// Component is a node in a wireframe tree.
//
// The type is a tagged variant: Kind discriminates containers from leaves,
// and Gap, Padding and Children are meaningful only on container kinds.
// Children are owned exclusively by their parent; trees must not share
// nodes or contain cycles.
type Component struct {
	// ID is an opaque identifier, unique within a tree.
	ID string `json:"id"`

	// Kind discriminates the component variant.
	Kind Kind `json:"kind"`

	// Hint optionally requests an explicit size. Only Width and Height
	// are read; position is always computed by the parent. Zero or
	// missing values mean "use the default sizing rule".
	Hint *Rect `json:"bounds,omitempty"`

	// Flex is the proportional weight among flexible siblings.
	// nil defaults to 1; zero means fixed-size (use the Hint extent).
	Flex *float64 `json:"flex,omitempty"`

	// Align governs cross-axis placement. Empty defaults to start.
	Align Align `json:"align,omitempty"`

	// Gap is the spacing between consecutive children (containers only).
	Gap float64 `json:"gap,omitempty"`

	// Padding is the inset applied to all four sides before children
	// are distributed (containers only).
	Padding float64 `json:"padding,omitempty"`

	// Children is the ordered child list (containers only). Order is
	// main-axis placement order.
	Children []*Component `json:"children,omitempty"`
}

// FlexWeight returns the effective flex weight: 1 when unset, clamped at
// zero for negative inputs. Zero denotes fixed sizing.
func (c *Component) FlexWeight() float64 {
	if c.Flex == nil {
		return 1
	}
	return clampNonNegative(*c.Flex)
}

// Alignment returns the effective alignment, defaulting to start.
func (c *Component) Alignment() Align {
	switch c.Align {
	case AlignCenter, AlignEnd:
		return c.Align
	default:
		return AlignStart
	}
}

// HintExtent returns the explicitly requested size along the given axis,
// or 0 when no positive hint is present.
func (c *Component) HintExtent(a Axis) float64 {
	if c.Hint == nil {
		return 0
	}
	return clampNonNegative(c.Hint.Extent(a))
}

// Fixed returns a pointer to v, for use as a Component.Flex value.
// Fixed(0) marks a component as fixed-size.
func Fixed(v float64) *float64 { return &v }

// Count returns the number of nodes in the subtree rooted at c,
// including c itself.
func (c *Component) Count() int {
	n := 1
	for _, child := range c.Children {
		n += child.Count()
	}
	return n
}
