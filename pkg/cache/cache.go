// Package cache provides byte-oriented caching for the layout pipeline.
//
// Three backends are available: FileCache persists entries on disk for CLI
// usage, RedisCache shares entries between server replicas, and NullCache
// disables caching. Keys are built by a Keyer so every stage of the
// pipeline (graph, layout, artifact) has a stable, collision-free scheme.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Per-stage TTLs. Keys are content-hashed so entries never go stale;
// the TTLs only bound disk and redis growth. Artifacts expire sooner
// because rendered images dominate the cache size.
const (
	TTLGraph    = 7 * 24 * time.Hour
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache is a byte cache with per-entry TTL.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the backend.
	Close() error
}

// Keyer generates cache keys for the pipeline stages.
// Each stage's key covers everything that influences its output, so a
// hit is always safe to reuse.
type Keyer interface {
	// GraphKey identifies a normalized graph by artifact variant and
	// raw content hash.
	GraphKey(variant, contentHash string) string

	// LayoutKey identifies a computed layout by graph hash and the
	// options that shaped the geometry.
	LayoutKey(graphHash string, opts LayoutKeyOpts) string

	// ArtifactKey identifies a rendered artifact by layout hash and
	// render settings.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts captures the layout options that affect geometry.
// Field order matters: keys are derived from the JSON encoding.
type LayoutKeyOpts struct {
	Direction            string `json:"direction"`
	HierarchicalMinNodes int    `json:"hierarchical_min_nodes"`
	HierarchicalMinEdges int    `json:"hierarchical_min_edges"`
}

// ArtifactKeyOpts captures the render settings that affect output bytes.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// GraphKey generates a key for a normalized graph.
// The content hash already identifies the raw bytes, so the key is plain
// concatenation and stays readable in cache listings.
func (k *DefaultKeyer) GraphKey(variant, contentHash string) string {
	return fmt.Sprintf("graph:%s:%s", variant, contentHash)
}

// LayoutKey generates a key for a computed layout.
func (k *DefaultKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", graphHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
