// Package pipeline runs the ingest → layout → render sequence behind
// every Lynxviz entry point. The CLI, the HTTP server, and embedding
// code all drive the same Runner, so option defaults and cache behavior
// exist in exactly one place.
//
// The stages are:
//
//  1. Ingest: parse a graph artifact, normalize it (drop duplicates and
//     dangling edges), and report what was repaired
//  2. Layout: compute container and node geometry
//  3. Render: emit DOT, SVG, PNG, or JSON artifacts
//
// Stages run independently or end to end, and every stage result is
// cached by content hash, so repeated runs over the same artifact are
// cheap.
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, raw, pipeline.Options{
//	    Variant:   "combined",
//	    Direction: "TB",
//	    Formats:   []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Individual stages are exposed as [Runner.Ingest],
// [Runner.GenerateLayout], and [Runner.Render].
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lynxviz/lynxviz/pkg/cache"
	"github.com/lynxviz/lynxviz/pkg/codegraph"
	"github.com/lynxviz/lynxviz/pkg/errors"
	"github.com/lynxviz/lynxviz/pkg/layout"
)

// =============================================================================
// Formats and Defaults
// =============================================================================

// DefaultVariant is the graph variant assumed when none is named.
const DefaultVariant = string(codegraph.VariantCombined)

// Output format names accepted in Options.Formats.
const (
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats indexes the accepted output formats.
var ValidFormats = map[string]bool{
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options
// =============================================================================

// Options configures a pipeline run. The zero value works; every field
// has a default. Fields marshal to JSON so API requests can carry them.
type Options struct {
	// Ingest options
	Variant string `json:"variant,omitempty"`
	Refresh bool   `json:"refresh,omitempty"`

	// Layout options
	Direction            string `json:"direction,omitempty"`
	HierarchicalMinNodes int    `json:"hierarchical_min_nodes,omitempty"`
	HierarchicalMinEdges int    `json:"hierarchical_min_edges,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`

	// Logger receives stage progress. Left nil, output is discarded.
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has run.
	validated bool `json:"-"`
}

// Result bundles everything a full pipeline run produces.
type Result struct {
	// Graph is the normalized code graph.
	Graph *codegraph.Graph

	// GraphHash is the content hash of the normalized graph.
	GraphHash string

	// Report lists recoverable problems found during ingest, nil when clean.
	Report *codegraph.Report

	// Layout holds the computed geometry.
	Layout *layout.Layout

	// Artifacts holds the rendered bytes, keyed by format.
	Artifacts map[string][]byte

	// Stats records sizes and per-stage timings.
	Stats Stats

	// CacheInfo reports which stages were served from cache.
	CacheInfo CacheInfo
}

// Stats records sizes and per-stage timings for one run.
type Stats struct {
	NodeCount      int
	EdgeCount      int
	ContainerCount int
	IngestTime     time.Duration
	LayoutTime     time.Duration
	RenderTime     time.Duration
}

// CacheInfo reports, per stage, whether the cache supplied the result.
// RenderHit is set only when every requested format was cached.
type CacheInfo struct {
	IngestHit bool
	LayoutHit bool
	RenderHit bool
}

// =============================================================================
// Format Validation
// =============================================================================

// ValidateFormat rejects output formats outside ValidFormats.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format %q (must be one of: dot, svg, png, json)", format)
	}
	return nil
}

// ValidateFormats applies ValidateFormat to every entry.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Option Defaults
// =============================================================================

// ValidateAndSetDefaults prepares options for a full pipeline run.
// Calling it again is a no-op, so the Runner can re-validate options
// it receives without re-defaulting caller input.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForIngest(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForIngest validates and defaults the ingest-stage options.
func (o *Options) ValidateForIngest() error {
	if o.Variant == "" {
		o.Variant = DefaultVariant
	}
	if _, err := codegraph.ParseVariant(o.Variant); err != nil {
		return err
	}
	o.setLogger()
	return nil
}

// SetLayoutDefaults fills unset layout options.
func (o *Options) SetLayoutDefaults() {
	if o.Direction == "" {
		o.Direction = layout.DefaultDirection
	}
	if o.HierarchicalMinNodes == 0 {
		o.HierarchicalMinNodes = layout.DefaultHierarchicalMinNodes
	}
	if o.HierarchicalMinEdges == 0 {
		o.HierarchicalMinEdges = layout.DefaultHierarchicalMinEdges
	}
	o.setLogger()
}

// ValidateForLayout validates and defaults the layout-stage options.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := errors.ValidateDirection(o.Direction); err != nil {
		return err
	}
	if o.HierarchicalMinNodes < 0 || o.HierarchicalMinEdges < 0 {
		return errors.New(errors.ErrCodeInvalidOptions, "hierarchical thresholds cannot be negative")
	}
	return nil
}

// SetRenderDefaults fills unset render options.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	o.setLogger()
}

// ValidateForRender validates and defaults the render-stage options.
// Layout options are included because rendering embeds the direction in
// its cache keys.
func (o *Options) ValidateForRender() error {
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := errors.ValidateDirection(o.Direction); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// setLogger applies the discard logger when none is configured.
func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// LayoutOptions converts pipeline options to layout engine options.
func (o *Options) LayoutOptions() layout.Options {
	return layout.Options{
		Direction:            o.Direction,
		HierarchicalMinNodes: o.HierarchicalMinNodes,
		HierarchicalMinEdges: o.HierarchicalMinEdges,
	}
}

// LayoutKeyOpts returns the cache key parameters for layout results.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Direction:            o.Direction,
		HierarchicalMinNodes: o.HierarchicalMinNodes,
		HierarchicalMinEdges: o.HierarchicalMinEdges,
	}
}

// ArtifactKeyOpts returns the cache key parameters for one rendered
// format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
	}
}
