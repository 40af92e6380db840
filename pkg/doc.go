// Package pkg provides the core libraries for Lynxviz code-graph layout.
//
// # Overview
//
// Lynxviz turns code-relationship graphs (functions, classes, and the calls
// or references between them) into deterministic visual layouts: every file
// becomes a container, members are placed inside it, and the result renders
// to DOT, SVG, or PNG. The pkg directory is organized into four areas:
//
//  1. [codegraph] - Graph artifact model (parsing, validation, normalization)
//  2. [layout] - Layout engine (containers, grid and hierarchical placement)
//  3. [render] - Output generation (DOT text, Graphviz SVG/PNG)
//  4. [pipeline] - Orchestration (ingest → layout → render) with caching
//
// The remaining packages are infrastructure shared by the CLI and the HTTP
// server: [cache], [store], [config], [errors], [observability], and
// [buildinfo].
//
// # Architecture
//
// The typical data flow through Lynxviz:
//
//	Graph artifact (JSON)
//	         ↓
//	    [codegraph] package (parse + validate + normalize)
//	         ↓
//	    [layout] package (containers + node geometry)
//	         ↓
//	    [render] package (DOT / SVG / PNG)
//
// Each stage is keyed by a content hash of its input, so [pipeline] can skip
// any stage whose result is already cached.
//
// # Quick Start
//
// Run the full pipeline with caching:
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/lynxviz/lynxviz/pkg/cache"
//	    "github.com/lynxviz/lynxviz/pkg/pipeline"
//	)
//
//	raw, _ := os.ReadFile("combined_graph.json")
//	c, _ := cache.NewFileCache("/tmp/lynxviz-cache")
//	runner := pipeline.NewRunner(c, nil, nil)
//	defer runner.Close()
//
//	res, err := runner.Execute(context.Background(), raw, pipeline.Options{
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	if err != nil {
//	    // handle
//	}
//	os.WriteFile("graph.svg", res.Artifacts[pipeline.FormatSVG], 0644)
//
// Or drive the stages directly, without caching:
//
//	g, _ := codegraph.UnmarshalGraph(raw)
//	g, report, _ := codegraph.Normalize(g)
//	lay, _ := layout.Build(&g, layout.Options{Direction: layout.DirectionTB})
//	dot := render.ToDOT(lay, &g)
//	svg, _ := render.SVG(dot)
//
// # Main Packages
//
// [codegraph] - The graph artifact model. Nodes carry a kind (class,
// method, function, property, import), a source file, and a line; edges
// connect them.
// Normalize deduplicates, drops dangling edges, and reports every repair.
// Variants (combined, call, declaration) name the artifact files a code
// analyzer emits.
//
// [layout] - Deterministic layout. Nodes are grouped by file into
// containers; each container places its members with a hierarchical
// layered strategy when the subgraph is interesting enough, or a grid
// otherwise. Identical input produces identical geometry.
//
// [dag] - Per-container layering workspace backing the hierarchical
// strategy: rank assignment, cycle breaking ([dag/transform]), crossing
// counting, and exhaustive order search for small ranks ([dag/perm]).
//
// [render] - DOT generation with one cluster per container, plus Graphviz
// rasterization to SVG and PNG.
//
// [pipeline] - Staged execution with per-stage content-hash caching and
// stage timing. The Runner is shared by the CLI and the HTTP server.
//
// # Infrastructure
//
// [cache] - Byte cache with TTLs keyed by content hashes. FileCache for the
// CLI, RedisCache for server deployments, NullCache to disable caching.
//
// [store] - Persistence for named layout documents behind the HTTP API.
// MemoryStore for development and tests, MongoStore for deployments.
//
// [config] - TOML configuration for the server: cache backend, store
// backend, and listen address.
//
// [errors] - Coded errors shared across packages, plus input validation
// helpers. Codes survive wrapping, so callers can branch on them.
//
// [observability] - Hook interfaces the pipeline and server invoke at stage
// boundaries, with no-op defaults.
//
// [buildinfo] - Version metadata stamped at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/layout/...   # Specific package
//	go test -run Example       # Examples only
//
// [codegraph]: https://pkg.go.dev/github.com/lynxviz/lynxviz/pkg/codegraph
// [layout]: https://pkg.go.dev/github.com/lynxviz/lynxviz/pkg/layout
// [render]: https://pkg.go.dev/github.com/lynxviz/lynxviz/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/lynxviz/lynxviz/pkg/pipeline
// [dag]: https://pkg.go.dev/github.com/lynxviz/lynxviz/pkg/dag
// [dag/transform]: https://pkg.go.dev/github.com/lynxviz/lynxviz/pkg/dag/transform
// [dag/perm]: https://pkg.go.dev/github.com/lynxviz/lynxviz/pkg/dag/perm
// [cache]: https://pkg.go.dev/github.com/lynxviz/lynxviz/pkg/cache
// [store]: https://pkg.go.dev/github.com/lynxviz/lynxviz/pkg/store
// [config]: https://pkg.go.dev/github.com/lynxviz/lynxviz/pkg/config
// [errors]: https://pkg.go.dev/github.com/lynxviz/lynxviz/pkg/errors
// [observability]: https://pkg.go.dev/github.com/lynxviz/lynxviz/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/lynxviz/lynxviz/pkg/buildinfo
package pkg
