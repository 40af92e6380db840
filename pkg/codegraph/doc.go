// Package codegraph provides serialization types for code-relationship graphs.
//
// This package defines the canonical wire format for Lynxviz's graph data:
// the JSON documents an external parser produces when it analyzes a source
// tree. Nodes are code declarations (classes, methods, functions, properties,
// imports); edges are call or containment relationships between them.
//
// # Wire Format
//
// Graphs use a simple node-link JSON format:
//
//	{
//	  "nodes": [
//	    {"id": "main::main.py", "name": "main", "kind": "FUNCTION", "file": "main.py", "line": 12}
//	  ],
//	  "edges": [
//	    {"from": "main::main.py", "to": "add::operations.py"}
//	  ]
//	}
//
// Common operations:
//
//	g, _ := codegraph.ReadGraphFile("combined_graph.json")  // File → Graph
//	codegraph.WriteGraphFile(g, "output.json")              // Graph → File
//	data, _ := codegraph.MarshalGraph(g)                    // Graph → []byte
//	parsed, _ := codegraph.UnmarshalGraph(data)             // []byte → Graph
//
// # Normalization
//
// Raw parser output can carry duplicate node ids or edges whose endpoints
// were never declared. [Normalize] cleans both up and returns a [Report] of
// what it dropped:
//
//	clean, report, err := codegraph.Normalize(g)
//	if err != nil {
//	    // structurally broken input, nothing renderable
//	}
//	if !report.Empty() {
//	    log.Warn(report.Summary())
//	}
//
// Missing required fields (id, name, file) abort the pass; duplicate ids and
// dangling edges are dropped and reported; unknown kinds are kept and fall
// back to a default style downstream.
//
// # Artifact Variants
//
// A parser run emits three sibling documents per analysis: a combined graph,
// a call-relationship-only graph, and a declaration-structure-only graph.
// [Variant] names them and [DiscoverArtifacts] lists which are present in a
// directory.
//
// # Concurrency
//
// All functions are safe for concurrent reads but not concurrent writes.
package codegraph
