package wireframe

// =============================================================================
// Flex Distribution
// =============================================================================

// Distribute computes absolute bounds for each child of a container.
//
// content is the container's content area (bounds after padding), axis the
// main-axis orientation, and gap the spacing between consecutive children.
// The returned slice has one entry per child, in child order.
//
// The algorithm runs two passes:
//
//  1. Measure: children with a zero flex weight reserve their explicit
//     main-axis extent; every other child accumulates its weight.
//  2. Assign: the leftover space (content extent minus gaps minus reserved
//     space, clamped at zero) is divided by the total weight, and children
//     are placed in order along the main axis. A fixed child without an
//     explicit extent falls back to one flex unit — which is zero when no
//     flexible sibling anchors it. That all-fixed-no-size degenerate case
//     intentionally yields zero-extent children; downstream renderers
//     depend on the literal behavior.
//
// Cross-axis extent is the child's explicit cross extent when positive,
// otherwise the full content cross extent; placement follows the child's
// alignment. Distribute is pure and never fails: malformed numeric input
// is clamped or defaulted, never rejected.
func Distribute(content Rect, axis Axis, children []*Component, gap float64) []Rect {
	n := len(children)
	if n == 0 {
		return nil
	}
	if gap < 0 {
		gap = 0
	}

	cross := crossAxis(axis)

	// Measure pass: reserve explicit space for fixed children, sum weights.
	var fixedSpace, totalWeight float64
	for _, child := range children {
		if w := child.FlexWeight(); w == 0 {
			fixedSpace += child.HintExtent(axis)
		} else {
			totalWeight += w
		}
	}

	mainTotal := content.Extent(axis) - gap*float64(n-1)
	flexSpace := clampNonNegative(mainTotal - fixedSpace)
	var perUnit float64
	if totalWeight > 0 {
		perUnit = flexSpace / totalWeight
	}

	crossTotal := content.CrossExtent(axis)

	// Assign pass: place children in order, advancing a running main offset.
	bounds := make([]Rect, n)
	offset := mainStart(content, axis)
	for i, child := range children {
		var mainSize float64
		if w := child.FlexWeight(); w == 0 {
			mainSize = child.HintExtent(axis)
			if mainSize == 0 {
				mainSize = perUnit
			}
		} else {
			mainSize = perUnit * w
		}

		crossSize := child.HintExtent(cross)
		if crossSize == 0 {
			crossSize = crossTotal
		}

		var crossOffset float64
		switch child.Alignment() {
		case AlignCenter:
			crossOffset = (crossTotal - crossSize) / 2
		case AlignEnd:
			crossOffset = crossTotal - crossSize
		}

		bounds[i] = compose(content, axis, offset, crossOffset, mainSize, crossSize)
		offset += mainSize + gap
	}
	return bounds
}

// crossAxis returns the axis perpendicular to a.
func crossAxis(a Axis) Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// mainStart returns the content area's origin along the main axis.
func mainStart(content Rect, a Axis) float64 {
	if a == Horizontal {
		return content.X
	}
	return content.Y
}

// compose builds an absolute rectangle from main/cross offsets and sizes,
// swapping roles according to the axis orientation.
func compose(content Rect, a Axis, mainOffset, crossOffset, mainSize, crossSize float64) Rect {
	if a == Horizontal {
		return Rect{
			X:      mainOffset,
			Y:      content.Y + crossOffset,
			Width:  clampNonNegative(mainSize),
			Height: clampNonNegative(crossSize),
		}
	}
	return Rect{
		X:      content.X + crossOffset,
		Y:      mainOffset,
		Width:  clampNonNegative(crossSize),
		Height: clampNonNegative(mainSize),
	}
}
