package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lynxviz/lynxviz/pkg/cache"
	"github.com/lynxviz/lynxviz/pkg/codegraph"
	"github.com/lynxviz/lynxviz/pkg/layout"
	"github.com/lynxviz/lynxviz/pkg/observability"
)

// Cache key types reported to observability hooks.
const (
	keyTypeGraph    = "graph"
	keyTypeLayout   = "layout"
	keyTypeArtifact = "artifact"
)

// Runner executes pipeline stages against a cache. It holds no state
// between runs beyond the cache, keyer, and logger, so one Runner can
// serve concurrent requests with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner builds a Runner. Nil arguments get working defaults: a
// NullCache (caching off), the default keyer, and the default logger.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	r := &Runner{Cache: c, Keyer: keyer, Logger: logger}
	if r.Cache == nil {
		r.Cache = cache.NewNullCache()
	}
	if r.Keyer == nil {
		r.Keyer = cache.NewDefaultKeyer()
	}
	if r.Logger == nil {
		r.Logger = log.Default()
	}
	return r
}

// Execute runs the complete ingest → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, raw []byte, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	ingestStart := time.Now()
	observability.Pipeline().OnIngestStart(ctx, opts.Variant)
	g, report, ingestHit, err := r.IngestWithCacheInfo(ctx, raw, opts)
	observability.Pipeline().OnIngestComplete(ctx, opts.Variant, graphNodeCount(g), time.Since(ingestStart), err)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	result.Graph = g
	result.Report = report
	result.Stats.IngestTime = time.Since(ingestStart)
	result.Stats.NodeCount = len(g.Nodes)
	result.Stats.EdgeCount = len(g.Edges)
	result.CacheInfo.IngestHit = ingestHit

	// The hash identifies the normalized graph in cache keys and API
	// responses.
	if graphData, err := codegraph.MarshalGraph(*g); err == nil {
		result.GraphHash = cache.Hash(graphData)
	}

	r.Logger.Info("ingested graph",
		"variant", opts.Variant,
		"nodes", len(g.Nodes),
		"edges", len(g.Edges),
		"duration", result.Stats.IngestTime)
	if report != nil && !report.Empty() {
		r.Logger.Warn("graph needed cleanup", "report", report.Summary())
	}

	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, opts.Direction, len(g.Nodes))
	lay, layoutHit, err := r.GenerateLayoutWithCacheInfo(ctx, g, opts)
	observability.Pipeline().OnLayoutComplete(ctx, opts.Direction, time.Since(layoutStart), err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	// The engine saw a pre-normalized graph, so its own report is empty;
	// attach the ingest diagnostics so serialized layouts keep them.
	if lay.Report == nil && report != nil && !report.Empty() {
		lay.Report = report
	}
	result.Layout = lay
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.ContainerCount = len(lay.Containers)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"containers", len(lay.Containers),
		"direction", lay.Direction,
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, lay, g, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// IngestWithCacheInfo parses and normalizes an artifact with caching and
// returns cache hit info. Refresh bypasses the cache read but still updates
// the cache with the fresh result.
func (r *Runner) IngestWithCacheInfo(ctx context.Context, raw []byte, opts Options) (*codegraph.Graph, *codegraph.Report, bool, error) {
	if err := opts.ValidateForIngest(); err != nil {
		return nil, nil, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.GraphKey(opts.Variant, cache.Hash(raw))

	if !opts.Refresh {
		if data, hit := r.cacheGet(ctx, cacheKey, keyTypeGraph); hit {
			var env ingestEnvelope
			if err := json.Unmarshal(data, &env); err == nil {
				return &env.Graph, env.Report, true, nil
			}
			// Undecodable entry, reingest below.
		}
	}

	g, report, err := Ingest(raw, opts)
	if err != nil {
		return nil, nil, false, err
	}

	if data, err := json.Marshal(ingestEnvelope{Graph: *g, Report: report}); err == nil {
		r.cacheSet(ctx, cacheKey, data, cache.TTLGraph, keyTypeGraph)
	}

	return g, report, false, nil
}

// Ingest runs IngestWithCacheInfo and drops the hit flag.
func (r *Runner) Ingest(ctx context.Context, raw []byte, opts Options) (*codegraph.Graph, *codegraph.Report, error) {
	g, report, _, err := r.IngestWithCacheInfo(ctx, raw, opts)
	return g, report, err
}

// GenerateLayoutWithCacheInfo computes geometry for g, serving and
// populating the layout cache. The bool reports whether the cache
// supplied the result.
func (r *Runner) GenerateLayoutWithCacheInfo(ctx context.Context, g *codegraph.Graph, opts Options) (*layout.Layout, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// The layout key hashes the graph content plus the options that
	// change geometry.
	graphData, err := codegraph.MarshalGraph(*g)
	if err != nil {
		return nil, false, err
	}
	cacheKey := r.Keyer.LayoutKey(cache.Hash(graphData), opts.LayoutKeyOpts())

	if !opts.Refresh {
		if data, hit := r.cacheGet(ctx, cacheKey, keyTypeLayout); hit {
			cached, err := layout.UnmarshalLayout(data)
			if err == nil {
				return &cached, true, nil
			}
			// Undecodable entry, recompute below.
		}
	}

	lay, err := GenerateLayout(g, opts)
	if err != nil {
		return nil, false, err
	}

	if data, err := layout.MarshalLayout(*lay); err == nil {
		r.cacheSet(ctx, cacheKey, data, cache.TTLLayout, keyTypeLayout)
	}

	return lay, false, nil
}

// GenerateLayout runs GenerateLayoutWithCacheInfo and drops the hit
// flag.
func (r *Runner) GenerateLayout(ctx context.Context, g *codegraph.Graph, opts Options) (*layout.Layout, error) {
	lay, _, err := r.GenerateLayoutWithCacheInfo(ctx, g, opts)
	return lay, err
}

// RenderWithCacheInfo renders every requested format, serving and
// populating the artifact cache. The bool reports whether all formats
// came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, lay *layout.Layout, g *codegraph.Graph, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Artifact keys hash the layout, so any geometry change invalidates
	// every rendered format at once.
	layoutData, err := layout.MarshalLayout(*lay)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// The hit flag means every requested format was cached; a partial
	// hit rerenders everything so formats stay consistent.
	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			data, hit := r.cacheGet(ctx, cacheKey, keyTypeArtifact)
			if !hit {
				artifacts = nil
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	rendered, err := RenderFromLayout(lay, g, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		r.cacheSet(ctx, cacheKey, data, cache.TTLArtifact, keyTypeArtifact)
	}

	return rendered, false, nil
}

// Render runs RenderWithCacheInfo and drops the hit flag.
func (r *Runner) Render(ctx context.Context, lay *layout.Layout, g *codegraph.Graph, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, lay, g, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// cacheGet reads a cache entry. Read failures are soft: the entry is
// treated as a miss and the pipeline recomputes.
func (r *Runner) cacheGet(ctx context.Context, key, keyType string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "key_type", keyType, "error", err)
		return nil, false
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, keyType)
	} else {
		observability.Cache().OnCacheMiss(ctx, keyType)
	}
	return data, hit
}

// cacheSet writes a cache entry, retrying transient backend failures.
// A failed write only costs a warm start on the next run.
func (r *Runner) cacheSet(ctx context.Context, key string, data []byte, ttl time.Duration, keyType string) {
	err := cache.RetryWithBackoff(ctx, func() error {
		return r.Cache.Set(ctx, key, data, ttl)
	})
	if err != nil {
		r.Logger.Warn("cache write failed", "key_type", keyType, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func graphNodeCount(g *codegraph.Graph) int {
	if g == nil {
		return 0
	}
	return len(g.Nodes)
}
