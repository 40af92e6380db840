package codegraph

import (
	"os"
	"path/filepath"

	"github.com/lynxviz/lynxviz/pkg/errors"
)

// Variant names one of the sibling graph documents a parser run emits.
type Variant string

// Graph variants, one JSON document each.
const (
	VariantCombined    Variant = "combined"    // declarations plus call relationships
	VariantCall        Variant = "call"        // call relationships only
	VariantDeclaration Variant = "declaration" // declaration structure only
)

// Variants returns all known variants in canonical order.
func Variants() []Variant {
	return []Variant{VariantCombined, VariantCall, VariantDeclaration}
}

// ParseVariant converts a user-supplied string into a Variant.
func ParseVariant(s string) (Variant, error) {
	v := Variant(s)
	switch v {
	case VariantCombined, VariantCall, VariantDeclaration:
		return v, nil
	}
	return "", errors.New(errors.ErrCodeInvalidVariant, "unknown graph variant %q (expected combined, call, or declaration)", s)
}

// Filename returns the artifact filename for this variant.
func (v Variant) Filename() string {
	switch v {
	case VariantCall:
		return "call_graph.json"
	case VariantDeclaration:
		return "declaration_graph.json"
	default:
		return "combined_graph.json"
	}
}

// DiscoverArtifacts lists the variants whose artifact files exist in dir,
// in canonical order. An empty result with a nil error means the directory
// exists but holds no graph artifacts.
func DiscoverArtifacts(dir string) ([]Variant, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "artifact directory %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidPath, "%s is not a directory", dir)
	}

	var found []Variant
	for _, v := range Variants() {
		if _, err := os.Stat(filepath.Join(dir, v.Filename())); err == nil {
			found = append(found, v)
		}
	}
	return found, nil
}

// LoadVariant reads the artifact file for variant v from dir.
func LoadVariant(dir string, v Variant) (Graph, error) {
	path := filepath.Join(dir, v.Filename())
	g, err := ReadGraphFile(path)
	if err != nil {
		return Graph{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "load %s variant", v)
	}
	return g, nil
}
