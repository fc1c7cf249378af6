// Package pipeline provides the core layout pipeline for wireform.
//
// This package implements the complete decode → layout flow that is shared
// by the CLI and the HTTP server. By centralizing this logic, we ensure
// consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Decode: parse and validate a wireframe document, then normalize it
//     (fill default viewport/arrangement, assign missing node IDs)
//  2. Layout: size the canvas and compute absolute bounds for every node
//
// Layout results are cached keyed by a content hash of the normalized
// document plus every layout-affecting option.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{DocumentPath: "login.json"}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	placements := result.Layout.Placements
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ben-mad-jlp/wireform/pkg/diagram"
	"github.com/ben-mad-jlp/wireform/pkg/errors"
	"github.com/ben-mad-jlp/wireform/pkg/wireframe"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultTTL is how long cached layout results stay valid.
	DefaultTTL = 24 * time.Hour
)

// DefaultViewport is the viewport class applied when neither the document
// nor the options specify one.
const DefaultViewport = wireframe.ViewportNarrow

// DefaultArrangement is the screen arrangement applied when neither the
// document nor the options specify one.
const DefaultArrangement = wireframe.SideBySide

// ValidViewports is the set of supported viewport classes.
var ValidViewports = map[string]bool{
	string(wireframe.ViewportNarrow): true,
	string(wireframe.ViewportMedium): true,
	string(wireframe.ViewportWide):   true,
}

// ValidArrangements is the set of supported screen arrangements.
var ValidArrangements = map[string]bool{
	string(wireframe.SideBySide): true,
	string(wireframe.Stacked):    true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Input: exactly one of DocumentPath or Document.
	DocumentPath string            `json:"document_path,omitempty"`
	Document     *diagram.Document `json:"document,omitempty"`

	// Layout options. Viewport and Arrangement, when set, override the
	// document's own values.
	Viewport    string `json:"viewport,omitempty"`
	Arrangement string `json:"arrangement,omitempty"`

	// LeavesOnly restricts the result to terminal components, matching
	// the engine's distribution contract. By default containers are
	// included so renderers can draw frames.
	LeavesOnly bool `json:"leaves_only,omitempty"`

	// Refresh bypasses the cache for this run.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	TTL    time.Duration `json:"-"`
	Logger *log.Logger   `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.DocumentPath == "" && o.Document == nil {
		return errors.New(errors.ErrCodeInvalidInput, "document or document_path is required")
	}
	if o.Viewport != "" && !ValidViewports[o.Viewport] {
		return errors.New(errors.ErrCodeInvalidViewport,
			"invalid viewport %q (must be one of: narrow, medium, wide)", o.Viewport)
	}
	if o.Arrangement != "" && !ValidArrangements[o.Arrangement] {
		return errors.New(errors.ErrCodeInvalidArrangement,
			"invalid arrangement %q (must be one of: side-by-side, stacked)", o.Arrangement)
	}

	if o.TTL == 0 {
		o.TTL = DefaultTTL
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// source names the document origin for logs and hooks.
func (o *Options) source() string {
	if o.DocumentPath != "" {
		return o.DocumentPath
	}
	return "inline"
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the decoded, normalized document.
	Document *diagram.Document

	// DocHash is the content hash of the normalized document.
	DocHash string

	// Layout is the computed canvas dimensions and placements.
	Layout diagram.Result

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ScreenCount int
	NodeCount   int
	DecodeTime  time.Duration
	LayoutTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout result came from cache
}
