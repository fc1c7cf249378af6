package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ben-mad-jlp/wireform/pkg/cache"
	"github.com/ben-mad-jlp/wireform/pkg/diagram"
	"github.com/ben-mad-jlp/wireform/pkg/observability"
	"github.com/ben-mad-jlp/wireform/pkg/wireframe"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Close releases cache resources.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// Execute runs the complete decode → layout pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Decode
	decodeStart := time.Now()
	doc, docHash, err := r.DecodeDocument(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Document = doc
	result.DocHash = docHash
	result.Stats.DecodeTime = time.Since(decodeStart)
	result.Stats.ScreenCount = len(doc.Screens)
	result.Stats.NodeCount = doc.NodeCount()

	r.Logger.Info("decoded document",
		"screens", result.Stats.ScreenCount,
		"nodes", result.Stats.NodeCount,
		"duration", result.Stats.DecodeTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	layout, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, doc, docHash, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = layout
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"placements", len(layout.Placements),
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	return result, nil
}

// DecodeDocument loads, validates and normalizes the document named by
// opts, returning it with its content hash. Option-level viewport and
// arrangement overrides are applied before hashing so the hash identifies
// exactly what will be laid out.
func (r *Runner) DecodeDocument(ctx context.Context, opts Options) (*diagram.Document, string, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, "", err
	}

	observability.Pipeline().OnDecodeStart(ctx, opts.source())
	start := time.Now()

	doc, err := r.loadDocument(opts)
	if err != nil {
		observability.Pipeline().OnDecodeComplete(ctx, opts.source(), 0, time.Since(start), err)
		return nil, "", err
	}

	if opts.Viewport != "" {
		doc.Viewport = wireframe.ViewportClass(opts.Viewport)
	}
	if opts.Arrangement != "" {
		doc.Arrangement = wireframe.Arrangement(opts.Arrangement)
	}
	doc.Normalize()

	data, err := diagram.MarshalDocument(doc)
	if err != nil {
		observability.Pipeline().OnDecodeComplete(ctx, opts.source(), 0, time.Since(start), err)
		return nil, "", err
	}

	observability.Pipeline().OnDecodeComplete(ctx, opts.source(), doc.NodeCount(), time.Since(start), nil)
	return doc, cache.Hash(data), nil
}

// loadDocument returns the inline document or reads it from disk.
// Inline documents are validated here; file reads validate on decode.
func (r *Runner) loadDocument(opts Options) (*diagram.Document, error) {
	if opts.Document != nil {
		if err := opts.Document.Validate(); err != nil {
			return nil, err
		}
		return opts.Document, nil
	}
	return diagram.ReadDocumentFile(opts.DocumentPath)
}

// ComputeLayout computes placements for an already decoded document.
func (r *Runner) ComputeLayout(ctx context.Context, doc *diagram.Document, docHash string, opts Options) (diagram.Result, error) {
	layout, _, err := r.ComputeLayoutWithCacheInfo(ctx, doc, docHash, opts)
	return layout, err
}

// ComputeLayoutWithCacheInfo computes placements with caching and returns
// cache hit info.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, doc *diagram.Document, docHash string, opts Options) (diagram.Result, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return diagram.Result{}, false, err
	}

	key := r.Keyer.LayoutKey(docHash, cache.LayoutKeyOpts{
		Viewport:          string(doc.Viewport),
		Arrangement:       string(doc.Arrangement),
		IncludeContainers: !opts.LeavesOnly,
	})

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if layout, err := diagram.UnmarshalResult(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return layout, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	observability.Pipeline().OnLayoutStart(ctx, string(doc.Viewport), doc.NodeCount())
	start := time.Now()

	layout, err := generateLayout(doc, opts)
	observability.Pipeline().OnLayoutComplete(ctx, string(doc.Viewport), time.Since(start), err)
	if err != nil {
		return diagram.Result{}, false, err
	}

	if data, err := diagram.MarshalResult(layout); err == nil {
		if err := r.Cache.Set(ctx, key, data, opts.TTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}

	return layout, false, nil
}

// generateLayout sizes the canvas and walks every screen tree.
func generateLayout(doc *diagram.Document, opts Options) (diagram.Result, error) {
	dims, placed, err := doc.Frame().LayoutScreens(doc.Screens)
	if err != nil {
		return diagram.Result{}, err
	}

	if opts.LeavesOnly {
		leaves := placed[:0:0]
		for _, p := range placed {
			if p.Component.Kind.IsLeaf() {
				leaves = append(leaves, p)
			}
		}
		placed = leaves
	}

	return diagram.Export(dims, placed), nil
}
