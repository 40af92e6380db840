package codegraph

// =============================================================================
// Kinds
// =============================================================================

// Kind classifies a code declaration.
type Kind string

// Node kinds emitted by the parser.
const (
	KindClass    Kind = "CLASS"
	KindMethod   Kind = "METHOD"
	KindFunction Kind = "FUNCTION"
	KindProperty Kind = "PROPERTY"
	KindImport   Kind = "IMPORT"
)

// Known reports whether k is one of the recognized node kinds.
// Unknown kinds are not an error: downstream styling falls back to a
// default style for them.
func (k Kind) Known() bool {
	switch k {
	case KindClass, KindMethod, KindFunction, KindProperty, KindImport:
		return true
	}
	return false
}

// Kinds returns all recognized node kinds in declaration order.
func Kinds() []Kind {
	return []Kind{KindClass, KindMethod, KindFunction, KindProperty, KindImport}
}

// =============================================================================
// Graph - Code Graph Serialization
// =============================================================================

// Graph is the canonical serialization format for code-relationship graphs.
// Used for parser artifacts, API requests, storage, and caching.
//
// The format is human-readable and designed for round-trip fidelity:
// import → normalize → export → re-import produces identical results.
type Graph struct {
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges" bson:"edges"`
}

// IsEmpty reports whether the graph has no nodes.
func (g *Graph) IsEmpty() bool {
	return g == nil || len(g.Nodes) == 0
}

// Index returns a map from node id to its position in Nodes.
// First occurrence wins for duplicate ids, matching normalization policy.
func (g *Graph) Index() map[string]int {
	idx := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		if _, ok := idx[n.ID]; !ok {
			idx[n.ID] = i
		}
	}
	return idx
}

// Files returns the distinct file attributes in first-appearance order.
// This ordering drives container creation and must stay deterministic.
func (g *Graph) Files() []string {
	seen := make(map[string]bool, len(g.Nodes))
	var files []string
	for _, n := range g.Nodes {
		if !seen[n.File] {
			seen[n.File] = true
			files = append(files, n.File)
		}
	}
	return files
}

// =============================================================================
// Node - Code Declaration
// =============================================================================

// Node is a single code declaration observed by the parser.
type Node struct {
	ID   string `json:"id" bson:"id"`     // Unique within a graph, e.g. "add::operations.py"
	Name string `json:"name" bson:"name"` // Display name, e.g. "add"
	Kind Kind   `json:"kind" bson:"kind"` // CLASS, METHOD, FUNCTION, PROPERTY, IMPORT
	File string `json:"file" bson:"file"` // Owning source file, e.g. "operations.py"
	Line int    `json:"line" bson:"line"` // 1-based declaration line, 0 if unknown
}

// =============================================================================
// Edge - Directed Relationship
// =============================================================================

// Edge represents a directed call or containment relationship.
type Edge struct {
	From string `json:"from" bson:"from"`
	To   string `json:"to" bson:"to"`
}
