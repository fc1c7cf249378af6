package diagram

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ben-mad-jlp/wireform/pkg/errors"
	"github.com/ben-mad-jlp/wireform/pkg/wireframe"
)

// =============================================================================
// Result - Flattened Layout Output
// =============================================================================

// Placement is one node's computed absolute bounds, in canvas pixels.
type Placement struct {
	ID     string         `json:"id"`
	Kind   wireframe.Kind `json:"kind"`
	Bounds wireframe.Rect `json:"bounds"`
}

// Result is the serialization format for a computed layout: total canvas
// dimensions plus one placement per node, parents before children.
// A renderer can draw every shape from this alone.
type Result struct {
	Canvas     wireframe.Dims `json:"canvas"`
	Placements []Placement    `json:"placements"`
}

// Export converts engine placements into the serializable result form.
func Export(canvas wireframe.Dims, placed []wireframe.Placement) Result {
	out := Result{
		Canvas:     canvas,
		Placements: make([]Placement, len(placed)),
	}
	for i, p := range placed {
		out.Placements[i] = Placement{
			ID:     p.Component.ID,
			Kind:   p.Component.Kind,
			Bounds: p.Bounds,
		}
	}
	return out
}

// Lookup returns the placement for the given node ID, if present.
func (r *Result) Lookup(id string) (Placement, bool) {
	for _, p := range r.Placements {
		if p.ID == id {
			return p, true
		}
	}
	return Placement{}, false
}

// =============================================================================
// Result Serialization API
// =============================================================================

// MarshalResult serializes a Result to pretty-printed JSON bytes.
func MarshalResult(r Result) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// UnmarshalResult deserializes JSON bytes into a Result.
func UnmarshalResult(data []byte) (Result, error) {
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return Result{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "unmarshal result")
	}
	return r, nil
}

// WriteResultFile writes a Result to a JSON file.
func WriteResultFile(r Result, path string) error {
	data, err := MarshalResult(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadResultFile reads a Result from a JSON file.
func ReadResultFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalResult(data)
}
