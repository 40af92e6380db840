package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lynxviz/lynxviz/pkg/codegraph"
)

const sampleGraph = `{
  "nodes": [
    {"id": "parse::main.py", "name": "parse", "kind": "FUNCTION", "file": "main.py", "line": 4},
    {"id": "run::main.py", "name": "run", "kind": "FUNCTION", "file": "main.py", "line": 12}
  ],
  "edges": [
    {"from": "run::main.py", "to": "parse::main.py"}
  ]
}`

func writeArtifact(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(sampleGraph), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestResolveGraphInputFile(t *testing.T) {
	dir := t.TempDir()
	path := writeArtifact(t, dir, "graph.json")

	in, err := resolveGraphInput(path, "")
	if err != nil {
		t.Fatalf("resolveGraphInput() error: %v", err)
	}

	if in.Path != path {
		t.Errorf("Path = %q, want %q", in.Path, path)
	}
	if in.Variant != "" {
		t.Errorf("Variant = %q, want empty for file input", in.Variant)
	}
	if string(in.Raw) != sampleGraph {
		t.Error("Raw should hold the file contents")
	}
}

func TestResolveGraphInputMissing(t *testing.T) {
	_, err := resolveGraphInput(filepath.Join(t.TempDir(), "absent.json"), "")
	if err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestResolveGraphInputDirWithVariant(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "combined_graph.json")
	want := writeArtifact(t, dir, "call_graph.json")

	in, err := resolveGraphInput(dir, "call")
	if err != nil {
		t.Fatalf("resolveGraphInput() error: %v", err)
	}

	if in.Variant != codegraph.VariantCall {
		t.Errorf("Variant = %q, want %q", in.Variant, codegraph.VariantCall)
	}
	if in.Path != want {
		t.Errorf("Path = %q, want %q", in.Path, want)
	}
}

func TestResolveGraphInputDirUnknownVariant(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "combined_graph.json")

	if _, err := resolveGraphInput(dir, "imports"); err == nil {
		t.Fatal("expected error for unknown variant")
	}
}

func TestResolveGraphInputDirSingleVariant(t *testing.T) {
	dir := t.TempDir()
	want := writeArtifact(t, dir, "declaration_graph.json")

	in, err := resolveGraphInput(dir, "")
	if err != nil {
		t.Fatalf("resolveGraphInput() error: %v", err)
	}

	if in.Variant != codegraph.VariantDeclaration {
		t.Errorf("Variant = %q, want %q", in.Variant, codegraph.VariantDeclaration)
	}
	if in.Path != want {
		t.Errorf("Path = %q, want %q", in.Path, want)
	}
}

func TestResolveGraphInputEmptyDir(t *testing.T) {
	if _, err := resolveGraphInput(t.TempDir(), ""); err == nil {
		t.Fatal("expected error for directory without artifacts")
	}
}

func TestDefaultLayoutPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"json input", "out/combined_graph.json", "out/combined_graph.layout.json"},
		{"no extension", "graph", "graph.layout.json"},
		{"nested path", "a/b/call_graph.json", "a/b/call_graph.layout.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := defaultLayoutPath(tt.input); got != tt.want {
				t.Errorf("defaultLayoutPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
