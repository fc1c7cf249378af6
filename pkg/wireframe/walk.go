package wireframe

// Placement pairs a component with its computed absolute bounds.
type Placement struct {
	Component *Component
	Bounds    Rect
}

// Layout walks the tree rooted at node and assigns absolute bounds,
// returning one placement per leaf in depth-first order.
//
// A leaf receives the bounds handed to it unchanged. A container insets
// its bounds by its padding, resolves its main axis, distributes the
// content area among its children with Distribute, and recurses into
// each child against the bounds assigned to that child — which is what
// makes nested containers fill their parent exactly. A container with no
// children contributes no placements.
//
// The input tree is never mutated. The only error is UnknownKindError
// for a kind outside the closed set.
func Layout(node *Component, bounds Rect) ([]Placement, error) {
	return walk(node, bounds, false)
}

// LayoutAll is Layout with container placements included: every node in
// the subtree appears exactly once, parents before their children. This
// is the form renderers consume, since cards and screens draw their own
// frames in addition to their contents.
func LayoutAll(node *Component, bounds Rect) ([]Placement, error) {
	return walk(node, bounds, true)
}

func walk(node *Component, bounds Rect, containers bool) ([]Placement, error) {
	if !node.Kind.Known() {
		return nil, &UnknownKindError{Kind: node.Kind, ID: node.ID}
	}

	if node.Kind.IsLeaf() {
		return []Placement{{Component: node, Bounds: bounds}}, nil
	}

	var out []Placement
	if containers {
		out = append(out, Placement{Component: node, Bounds: bounds})
	}
	if len(node.Children) == 0 {
		return out, nil
	}

	axis, err := node.Kind.Axis()
	if err != nil {
		return nil, err
	}

	content := bounds.Inset(node.Padding)
	childBounds := Distribute(content, axis, node.Children, clampNonNegative(node.Gap))

	for i, child := range node.Children {
		sub, err := walk(child, childBounds[i], containers)
		if err != nil {
			return nil, err
		}
		out = append(out, sub...)
	}
	return out, nil
}
