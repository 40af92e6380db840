package cli

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lynxviz/lynxviz/pkg/codegraph"
)

func testChoices() []VariantChoice {
	return []VariantChoice{
		{Variant: codegraph.VariantCombined, Path: "out/combined_graph.json", NodeCount: 5, EdgeCount: 4},
		{Variant: codegraph.VariantCall, Path: "out/call_graph.json", NodeCount: 3, EdgeCount: 2},
		{Variant: codegraph.VariantDeclaration, Path: "out/declaration_graph.json", NodeCount: 5, EdgeCount: 1},
	}
}

func TestVariantListModelNavigation(t *testing.T) {
	m := NewVariantListModel(testChoices())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m = next.(VariantListModel)
	if m.Cursor != 1 {
		t.Errorf("after j: cursor = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(VariantListModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(VariantListModel)
	if m.Cursor != 2 {
		t.Errorf("down at bottom: cursor = %d, want 2", m.Cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	m = next.(VariantListModel)
	if m.Cursor != 1 {
		t.Errorf("after k: cursor = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(VariantListModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(VariantListModel)
	if m.Cursor != 0 {
		t.Errorf("up at top: cursor = %d, want 0", m.Cursor)
	}
}

func TestVariantListModelSelect(t *testing.T) {
	m := NewVariantListModel(testChoices())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(VariantListModel)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(VariantListModel)

	if m.Selected == nil {
		t.Fatal("enter should set Selected")
	}
	if m.Selected.Variant != codegraph.VariantCall {
		t.Errorf("Selected.Variant = %q, want %q", m.Selected.Variant, codegraph.VariantCall)
	}
	if cmd == nil {
		t.Error("enter should return a quit command")
	}
}

func TestVariantListModelQuit(t *testing.T) {
	m := NewVariantListModel(testChoices())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(VariantListModel)

	if m.Selected != nil {
		t.Error("quit should leave Selected nil")
	}
	if cmd == nil {
		t.Error("q should return a quit command")
	}
}

func TestVariantListModelView(t *testing.T) {
	view := NewVariantListModel(testChoices()).View()

	for _, want := range []string{"Select Graph Variant", "combined", "call_graph.json", "Nodes"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestVariantChoices(t *testing.T) {
	dir := t.TempDir()

	g := codegraph.Graph{
		Nodes: []codegraph.Node{
			{ID: "main::main.py", Name: "main", Kind: codegraph.KindFunction, File: "main.py", Line: 1},
			{ID: "run::main.py", Name: "run", Kind: codegraph.KindFunction, File: "main.py", Line: 8},
		},
		Edges: []codegraph.Edge{{From: "main::main.py", To: "run::main.py"}},
	}
	for _, v := range []codegraph.Variant{codegraph.VariantCombined, codegraph.VariantCall} {
		if err := codegraph.WriteGraphFile(g, filepath.Join(dir, v.Filename())); err != nil {
			t.Fatalf("write %s: %v", v, err)
		}
	}

	variants, err := codegraph.DiscoverArtifacts(dir)
	if err != nil {
		t.Fatalf("DiscoverArtifacts() error: %v", err)
	}

	choices := variantChoices(dir, variants)
	if len(choices) != 2 {
		t.Fatalf("len(choices) = %d, want 2", len(choices))
	}
	for _, ch := range choices {
		if ch.NodeCount != 2 || ch.EdgeCount != 1 {
			t.Errorf("%s: counts = %d/%d, want 2/1", ch.Variant, ch.NodeCount, ch.EdgeCount)
		}
		if ch.Path == "" {
			t.Errorf("%s: empty path", ch.Variant)
		}
	}
}
