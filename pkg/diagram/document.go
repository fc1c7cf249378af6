// Package diagram defines the serialization format for wireframe documents.
//
// A Document is the canonical wire form consumed by the CLI and HTTP
// surfaces: a viewport class, a screen arrangement, and one component tree
// per screen. The format is human-readable JSON designed for round-trip
// fidelity: import → normalize → export → re-import produces identical
// results.
//
// The package also defines the flattened Result form produced by layout:
// one (id, kind, bounds) placement per node, which is everything a
// downstream renderer needs to draw each shape without re-deriving layout.
package diagram

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/ben-mad-jlp/wireform/pkg/errors"
	"github.com/ben-mad-jlp/wireform/pkg/wireframe"
)

// =============================================================================
// Document - Wireframe Serialization
// =============================================================================

// Document is the canonical serialization format for wireframe diagrams.
// Used for API requests, CLI input, caching, and cross-tool compatibility.
type Document struct {
	// Name is an optional display title for the diagram.
	Name string `json:"name,omitempty"`

	// Viewport selects the preset screen width shared by all screens.
	// Empty defaults to narrow during normalization.
	Viewport wireframe.ViewportClass `json:"viewport,omitempty"`

	// Arrangement controls multi-screen tiling.
	// Empty defaults to side-by-side during normalization.
	Arrangement wireframe.Arrangement `json:"arrangement,omitempty"`

	// Screens holds one component tree per screen, in canvas order.
	Screens []*wireframe.Component `json:"screens"`
}

// Frame returns the canvas frame described by the document.
func (d *Document) Frame() wireframe.Frame {
	return wireframe.Frame{Viewport: d.Viewport, Arrangement: d.Arrangement}
}

// NodeCount returns the total number of components across all screens.
func (d *Document) NodeCount() int {
	n := 0
	for _, s := range d.Screens {
		n += s.Count()
	}
	return n
}

// =============================================================================
// Validation
// =============================================================================

// Validate checks structural invariants the layout engine assumes:
// at least one screen, every kind inside the closed set, children only on
// container kinds, and IDs unique across the whole document.
func (d *Document) Validate() error {
	if len(d.Screens) == 0 {
		return errors.New(errors.ErrCodeInvalidDocument, "document must contain at least one screen")
	}
	if d.Viewport != "" {
		if _, err := d.Viewport.Width(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidViewport, err, "viewport")
		}
	}
	switch d.Arrangement {
	case "", wireframe.SideBySide, wireframe.Stacked:
	default:
		return errors.New(errors.ErrCodeInvalidArrangement, "unknown arrangement %q", d.Arrangement)
	}

	seen := make(map[string]bool, d.NodeCount())
	for i, screen := range d.Screens {
		if screen == nil {
			return errors.New(errors.ErrCodeInvalidDocument, "screen %d is null", i)
		}
		if screen.Kind != wireframe.KindScreen {
			return errors.New(errors.ErrCodeInvalidTree, "screen %d has kind %q, want %q", i, screen.Kind, wireframe.KindScreen)
		}
		if err := validateTree(screen, seen); err != nil {
			return err
		}
	}
	return nil
}

func validateTree(c *wireframe.Component, seen map[string]bool) error {
	if !c.Kind.Known() {
		return errors.New(errors.ErrCodeInvalidKind, "unknown component kind %q on node %q", c.Kind, c.ID)
	}
	if c.ID != "" {
		if err := errors.ValidateNodeID(c.ID); err != nil {
			return err
		}
		if seen[c.ID] {
			return errors.New(errors.ErrCodeInvalidTree, "duplicate component id %q", c.ID)
		}
		seen[c.ID] = true
	}
	if c.Kind.IsLeaf() && len(c.Children) > 0 {
		return errors.New(errors.ErrCodeInvalidTree, "leaf %q (%s) cannot have children", c.ID, c.Kind)
	}
	for i, child := range c.Children {
		if child == nil {
			return errors.New(errors.ErrCodeInvalidTree, "child %d of %q is null", i, c.ID)
		}
		if err := validateTree(child, seen); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Normalization
// =============================================================================

// Normalize fills defaults in place: empty viewport and arrangement get
// their presets, and every component without an ID is assigned a fresh
// UUID so the flattened result can always address it.
func (d *Document) Normalize() {
	if d.Viewport == "" {
		d.Viewport = wireframe.ViewportNarrow
	}
	if d.Arrangement == "" {
		d.Arrangement = wireframe.SideBySide
	}
	for _, screen := range d.Screens {
		assignIDs(screen)
	}
}

func assignIDs(c *wireframe.Component) {
	if c == nil {
		return
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	for _, child := range c.Children {
		assignIDs(child)
	}
}

// =============================================================================
// Document Serialization API
// =============================================================================

// MarshalDocument serializes a Document to pretty-printed JSON bytes.
func MarshalDocument(d *Document) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// UnmarshalDocument deserializes JSON bytes into a Document and validates it.
func UnmarshalDocument(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "unmarshal document")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// WriteDocumentFile writes a Document to a JSON file.
func WriteDocumentFile(d *Document, path string) error {
	data, err := MarshalDocument(d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadDocumentFile reads a Document from a JSON file.
func ReadDocumentFile(path string) (*Document, error) {
	if err := errors.ValidateDocumentPath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "document %s not found", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalDocument(data)
}
