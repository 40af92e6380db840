package codegraph

import (
	"fmt"
	"strings"

	"github.com/lynxviz/lynxviz/pkg/errors"
)

// =============================================================================
// Report - Normalization Diagnostics
// =============================================================================

// UnknownKind records a node whose kind is outside the recognized enum.
// The node is kept; styling falls back to a default downstream.
type UnknownKind struct {
	NodeID string `json:"node_id" bson:"node_id"`
	Kind   Kind   `json:"kind" bson:"kind"`
}

// Report aggregates the recoverable problems found while normalizing a graph.
// A non-empty report is a warning, never a failure: the cleaned graph is
// still fully renderable.
type Report struct {
	// DuplicateNodes lists ids whose later occurrences were dropped.
	DuplicateNodes []string `json:"duplicate_nodes,omitempty" bson:"duplicate_nodes,omitempty"`
	// DanglingEdges lists edges referencing unknown node ids.
	DanglingEdges []Edge `json:"dangling_edges,omitempty" bson:"dangling_edges,omitempty"`
	// UnknownKinds lists nodes kept with out-of-enum kinds.
	UnknownKinds []UnknownKind `json:"unknown_kinds,omitempty" bson:"unknown_kinds,omitempty"`
}

// Empty reports whether normalization found nothing to complain about.
func (r *Report) Empty() bool {
	return len(r.DuplicateNodes) == 0 && len(r.DanglingEdges) == 0 && len(r.UnknownKinds) == 0
}

// Summary renders a one-line human-readable digest of the report.
// Returns the empty string for an empty report.
func (r *Report) Summary() string {
	if r.Empty() {
		return ""
	}
	var parts []string
	if n := len(r.DuplicateNodes); n > 0 {
		parts = append(parts, fmt.Sprintf("%d duplicate node id(s) dropped", n))
	}
	if n := len(r.DanglingEdges); n > 0 {
		parts = append(parts, fmt.Sprintf("%d dangling edge(s) dropped", n))
	}
	if n := len(r.UnknownKinds); n > 0 {
		parts = append(parts, fmt.Sprintf("%d node(s) with unrecognized kind", n))
	}
	return strings.Join(parts, ", ")
}

// =============================================================================
// Normalize - Graph Ingest
// =============================================================================

// Normalize validates and cleans raw parser output.
//
// Policy, per field severity:
//   - A node missing id, name, or file is a structural failure: geometry
//     cannot be computed on an incomplete record, so the whole pass aborts
//     with ErrCodeMalformedInput.
//   - An edge missing from or to is likewise a structural failure.
//   - A duplicate node id keeps the first occurrence and drops the rest,
//     recorded in the report. Partial graphs stay renderable.
//   - An edge whose endpoint resolves to no surviving node is dropped and
//     recorded in the report.
//   - An unrecognized kind is kept and recorded; style resolution later
//     substitutes the default style.
//
// The returned graph is a fresh value; the input is never mutated. Zero
// nodes is a valid input and yields an empty graph with an empty report.
func Normalize(g Graph) (Graph, *Report, error) {
	report := &Report{}

	out := Graph{Nodes: make([]Node, 0, len(g.Nodes))}
	seen := make(map[string]bool, len(g.Nodes))

	for i, n := range g.Nodes {
		if err := errors.ValidateNodeID(n.ID); err != nil {
			return Graph{}, nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "node at index %d", i)
		}
		if n.Name == "" {
			return Graph{}, nil, errors.New(errors.ErrCodeMalformedInput, "node %s missing name", n.ID)
		}
		if err := errors.ValidateFileAttr(n.File); err != nil {
			return Graph{}, nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "node %s", n.ID)
		}

		if seen[n.ID] {
			report.DuplicateNodes = append(report.DuplicateNodes, n.ID)
			continue
		}
		seen[n.ID] = true

		if !n.Kind.Known() {
			report.UnknownKinds = append(report.UnknownKinds, UnknownKind{NodeID: n.ID, Kind: n.Kind})
		}
		out.Nodes = append(out.Nodes, n)
	}

	out.Edges = make([]Edge, 0, len(g.Edges))
	for i, e := range g.Edges {
		if e.From == "" || e.To == "" {
			return Graph{}, nil, errors.New(errors.ErrCodeMalformedInput, "edge at index %d missing endpoint", i)
		}
		if !seen[e.From] || !seen[e.To] {
			report.DanglingEdges = append(report.DanglingEdges, e)
			continue
		}
		out.Edges = append(out.Edges, e)
	}

	return out, report, nil
}
