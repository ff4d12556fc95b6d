package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/waffle/pkg/cache"
	"github.com/matzehuels/waffle/pkg/chart"
	"github.com/matzehuels/waffle/pkg/errors"
	"github.com/matzehuels/waffle/pkg/observability"
	"github.com/matzehuels/waffle/pkg/render/layout"
	"github.com/matzehuels/waffle/pkg/waffle"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it so caching behaves the same everywhere.
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

// Execute runs the complete plan → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, fig *chart.Figure, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{Artifacts: make(map[string][]byte)}

	hash, err := FigureHash(fig)
	if err != nil {
		return nil, err
	}
	result.FigureHash = hash

	// Stage 1+2: Plan and layout. A cached layout skips planning.
	layoutStart := time.Now()
	l, layoutHit, err := r.layout(ctx, fig, hash, opts, &result.Plans)
	if err != nil {
		return nil, err
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Panels = len(l.Panels)
	result.Stats.Blocks = len(l.Blocks)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"panels", len(l.Panels),
		"blocks", len(l.Blocks),
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Plan computes the block plan of every panel of fig.
func (r *Runner) Plan(ctx context.Context, fig *chart.Figure) ([]*waffle.Result, error) {
	panels := 0
	if fig != nil {
		panels = len(fig.Panels)
	}
	observability.Pipeline().OnPlanStart(ctx, panels)
	start := time.Now()

	plans, err := Plan(ctx, fig)

	blocks := 0
	for _, p := range plans {
		blocks += len(p.Assignments)
	}
	observability.Pipeline().OnPlanComplete(ctx, panels, blocks, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	for i, p := range plans {
		r.Logger.Debug("planned panel",
			"panel", fig.Panels[i].Key,
			"rows", p.Grid.Rows,
			"columns", p.Grid.Columns,
			"dropped", p.Dropped(),
			"unused", p.Unused())
	}
	return plans, nil
}

// LayoutWithCacheInfo computes the figure layout with caching and returns cache hit info.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, fig *chart.Figure, opts Options) (layout.Layout, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Layout{}, false, err
	}

	hash, err := FigureHash(fig)
	if err != nil {
		return layout.Layout{}, false, err
	}
	return r.layout(ctx, fig, hash, opts, nil)
}

// Layout is a convenience wrapper that calls LayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) Layout(ctx context.Context, fig *chart.Figure, opts Options) (layout.Layout, error) {
	l, _, err := r.LayoutWithCacheInfo(ctx, fig, opts)
	return l, err
}

// layout serves the layout from the cache or plans and builds it. When plans
// is non-nil it receives the panel plans of a cache miss.
func (r *Runner) layout(ctx context.Context, fig *chart.Figure, hash string, opts Options, plans *[]*waffle.Result) (layout.Layout, bool, error) {
	cacheKey := r.Keyer.LayoutKey(hash, opts.LayoutKeyOpts(fig))

	// Try cache first (unless a fresh run was requested)
	if !opts.NoCache {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := layout.UnmarshalLayout(data)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached, true, nil
			}
			// If deserialization fails, fall through to recompute
		} else if err != nil {
			r.Logger.Warn("cache read failed", "error", err)
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	ps, err := r.Plan(ctx, fig)
	if err != nil {
		return layout.Layout{}, false, err
	}
	if plans != nil {
		*plans = ps
	}

	observability.Pipeline().OnLayoutStart(ctx, len(ps))
	start := time.Now()
	l, err := GenerateLayout(fig, ps, opts)
	observability.Pipeline().OnLayoutComplete(ctx, len(l.Blocks), time.Since(start), err)
	if err != nil {
		return layout.Layout{}, false, err
	}

	if data, err := layout.MarshalLayout(l); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout); err != nil {
			r.Logger.Warn("cache write failed", "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}

	return l, false, nil
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	opts = applyLayoutMetadata(opts, l)

	// Compute cache key from layout data
	layoutData, err := layout.MarshalLayout(l)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "serialize layout for cache key")
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	if !opts.NoCache {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil // All artifacts from cache
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := RenderFromLayout(l, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
