package layout

import (
	"reflect"
	"testing"

	"github.com/lynxviz/lynxviz/pkg/codegraph"
	"github.com/lynxviz/lynxviz/pkg/errors"
)

// fn builds a function node with sensible defaults for layout tests.
func fn(id, file string) codegraph.Node {
	return codegraph.Node{ID: id, Name: id, Kind: codegraph.KindFunction, File: file, Line: 1}
}

func mustBuild(t *testing.T, g *codegraph.Graph, opts Options) *Layout {
	t.Helper()
	l, err := Build(g, opts)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return l
}

func TestBuildTwoConnectedNodes(t *testing.T) {
	g := &codegraph.Graph{
		Nodes: []codegraph.Node{fn("a", "x.py"), fn("b", "x.py")},
		Edges: []codegraph.Edge{{From: "a", To: "b"}},
	}

	l := mustBuild(t, g, Options{})

	if len(l.Containers) != 1 {
		t.Fatalf("container count = %d, want 1", len(l.Containers))
	}
	c := l.Containers[0]
	if c.Strategy != StrategyHierarchical {
		t.Errorf("strategy = %q, want %q", c.Strategy, StrategyHierarchical)
	}
	if c.Label != "x.py" {
		t.Errorf("container label = %q, want %q", c.Label, "x.py")
	}

	a, _ := l.NodeByID("a")
	b, ok := l.NodeByID("b")
	if !ok {
		t.Fatal("node b missing from layout")
	}
	if b.Position.Y <= a.Position.Y {
		t.Errorf("b.Y = %v, want > a.Y = %v (b must rank after a)", b.Position.Y, a.Position.Y)
	}
}

func TestBuildGridFallbackFiveNodes(t *testing.T) {
	g := &codegraph.Graph{
		Nodes: []codegraph.Node{
			fn("n1", "y.py"), fn("n2", "y.py"), fn("n3", "y.py"),
			fn("n4", "y.py"), fn("n5", "y.py"),
		},
	}

	l := mustBuild(t, g, Options{})

	c := l.Containers[0]
	if c.Strategy != StrategyGrid {
		t.Fatalf("strategy = %q, want %q", c.Strategy, StrategyGrid)
	}

	// cols=3, rows=2: n4 wraps to the second row below n1.
	n1, _ := l.NodeByID("n1")
	n3, _ := l.NodeByID("n3")
	n4, _ := l.NodeByID("n4")
	if n3.Position.X != n1.Position.X+2*(NodeWidth+NodeGapX) {
		t.Errorf("n3.X = %v, want %v", n3.Position.X, n1.Position.X+2*(NodeWidth+NodeGapX))
	}
	if n4.Position.X != n1.Position.X {
		t.Errorf("n4.X = %v, want first column %v", n4.Position.X, n1.Position.X)
	}
	if n4.Position.Y != n1.Position.Y+NodeHeight+NodeGapY {
		t.Errorf("n4.Y = %v, want second row %v", n4.Position.Y, n1.Position.Y+NodeHeight+NodeGapY)
	}
}

func TestBuildFiveFilesGridPlacement(t *testing.T) {
	g := &codegraph.Graph{
		Nodes: []codegraph.Node{
			fn("a", "f1.py"), fn("b", "f2.py"), fn("c", "f3.py"),
			fn("d", "f4.py"), fn("e", "f5.py"),
		},
	}

	l := mustBuild(t, g, Options{})

	if len(l.Containers) != 5 {
		t.Fatalf("container count = %d, want 5", len(l.Containers))
	}

	// cols = ceil(sqrt(5)) = 3: three slots in row one, two in row two.
	wantX := []float64{
		CanvasMargin,
		CanvasMargin + GridSlotWidth,
		CanvasMargin + 2*GridSlotWidth,
		CanvasMargin,
		CanvasMargin + GridSlotWidth,
	}
	rowTwoY := CanvasMargin + MinContainerHeight + GridRowGap
	wantY := []float64{CanvasMargin, CanvasMargin, CanvasMargin, rowTwoY, rowTwoY}

	for i, c := range l.Containers {
		if c.Position.X != wantX[i] || c.Position.Y != wantY[i] {
			t.Errorf("container %d at (%v, %v), want (%v, %v)",
				i, c.Position.X, c.Position.Y, wantX[i], wantY[i])
		}
	}
}

func TestBuildDanglingEdgeDropped(t *testing.T) {
	g := &codegraph.Graph{
		Nodes: []codegraph.Node{fn("a", "x.py"), fn("b", "x.py")},
		Edges: []codegraph.Edge{{From: "a", To: "b"}, {From: "a", To: "missing"}},
	}

	l := mustBuild(t, g, Options{})

	if len(l.Edges) != 1 {
		t.Fatalf("edge count = %d, want 1 (dangling edge dropped)", len(l.Edges))
	}
	if l.Edges[0].SourceID != "a" || l.Edges[0].TargetID != "b" {
		t.Errorf("surviving edge = %s->%s, want a->b", l.Edges[0].SourceID, l.Edges[0].TargetID)
	}
	if l.Report == nil {
		t.Fatal("Report = nil, want dangling edge diagnostic")
	}
	if len(l.Report.DanglingEdges) != 1 {
		t.Errorf("dangling edges reported = %d, want 1", len(l.Report.DanglingEdges))
	}
}

func TestBuildEmptyGraph(t *testing.T) {
	l := mustBuild(t, &codegraph.Graph{}, Options{})

	if len(l.Nodes) != 0 || len(l.Edges) != 0 || len(l.Containers) != 0 {
		t.Errorf("empty graph produced %d nodes, %d edges, %d containers; want all zero",
			len(l.Nodes), len(l.Edges), len(l.Containers))
	}
	if l.Nodes == nil || l.Edges == nil {
		t.Error("empty layout must carry empty slices, not nil")
	}
	if l.Report != nil {
		t.Errorf("Report = %+v, want nil for clean input", l.Report)
	}
}

func TestBuildNilGraph(t *testing.T) {
	_, err := Build(nil, Options{})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Build(nil) error = %v, want code %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestBuildInvalidDirection(t *testing.T) {
	g := &codegraph.Graph{Nodes: []codegraph.Node{fn("a", "x.py")}}
	_, err := Build(g, Options{Direction: "BT"})
	if !errors.Is(err, errors.ErrCodeInvalidDirection) {
		t.Errorf("Build() error = %v, want code %s", err, errors.ErrCodeInvalidDirection)
	}
}

func TestBuildMalformedInput(t *testing.T) {
	g := &codegraph.Graph{
		Nodes: []codegraph.Node{{ID: "a", Name: "a", Kind: codegraph.KindFunction}}, // no file
	}
	_, err := Build(g, Options{})
	if !errors.Is(err, errors.ErrCodeMalformedInput) {
		t.Errorf("Build() error = %v, want code %s", err, errors.ErrCodeMalformedInput)
	}
}

func TestBuildContainment(t *testing.T) {
	// Mixed strategies, both directions: every node rectangle must sit
	// inside its container's footprint.
	g := &codegraph.Graph{
		Nodes: []codegraph.Node{
			fn("a", "main.py"), fn("b", "main.py"), fn("c", "main.py"),
			fn("d", "main.py"), fn("e", "main.py"),
			fn("u", "utils.py"), fn("v", "utils.py"), fn("w", "utils.py"),
		},
		Edges: []codegraph.Edge{
			{From: "a", To: "b"}, {From: "a", To: "c"},
			{From: "b", To: "d"}, {From: "c", To: "d"}, {From: "c", To: "e"},
		},
	}

	for _, direction := range []string{DirectionTB, DirectionLR} {
		t.Run(direction, func(t *testing.T) {
			l := mustBuild(t, g, Options{Direction: direction})
			for _, n := range l.Nodes {
				c, ok := l.ContainerByID(n.ContainerID)
				if !ok {
					t.Fatalf("node %s references unknown container %s", n.ID, n.ContainerID)
				}
				if !c.Contains(n) {
					t.Errorf("node %s at (%v, %v) escapes container %s at (%v, %v) size (%v, %v)",
						n.ID, n.Position.X, n.Position.Y, c.ID,
						c.Position.X, c.Position.Y, c.Size.Width, c.Size.Height)
				}
				if n.Position.X < 0 || n.Position.Y < 0 {
					t.Errorf("node %s has negative position (%v, %v)", n.ID, n.Position.X, n.Position.Y)
				}
			}
		})
	}
}

func TestBuildTitleBandRespected(t *testing.T) {
	g := &codegraph.Graph{
		Nodes: []codegraph.Node{fn("a", "x.py"), fn("b", "x.py")},
		Edges: []codegraph.Edge{{From: "a", To: "b"}},
	}
	l := mustBuild(t, g, Options{})

	c := l.Containers[0]
	for _, n := range l.Nodes {
		if n.Position.Y < c.Position.Y+TitleBand {
			t.Errorf("node %s at Y=%v intrudes into title band (container Y=%v)",
				n.ID, n.Position.Y, c.Position.Y)
		}
		if n.Position.X < c.Position.X+HorizontalPad {
			t.Errorf("node %s at X=%v intrudes into side padding", n.ID, n.Position.X)
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	// Includes a cycle so cycle breaking and ordering both run.
	g := &codegraph.Graph{
		Nodes: []codegraph.Node{
			fn("a", "m.py"), fn("b", "m.py"), fn("c", "m.py"), fn("d", "m.py"),
			fn("x", "u.py"), fn("y", "u.py"),
		},
		Edges: []codegraph.Edge{
			{From: "a", To: "b"}, {From: "b", To: "c"}, {From: "c", To: "a"},
			{From: "a", To: "d"}, {From: "x", To: "y"},
		},
	}

	first := mustBuild(t, g, Options{})
	for i := 0; i < 20; i++ {
		next := mustBuild(t, g, Options{})
		if !reflect.DeepEqual(first, next) {
			t.Fatalf("run %d produced a different layout", i)
		}
	}
}

func TestBuildEdgeConservation(t *testing.T) {
	// Surviving edges map 1:1 to input order, including edges the layering
	// workspace drops internally (cycles, self-references).
	g := &codegraph.Graph{
		Nodes: []codegraph.Node{fn("a", "x.py"), fn("b", "x.py")},
		Edges: []codegraph.Edge{
			{From: "a", To: "b"},
			{From: "b", To: "a"}, // cycle: broken for layering, kept in output
			{From: "a", To: "a"}, // self-reference: same
		},
	}

	l := mustBuild(t, g, Options{})

	if len(l.Edges) != 3 {
		t.Fatalf("edge count = %d, want 3", len(l.Edges))
	}
	wantIDs := []string{"e0", "e1", "e2"}
	for i, e := range l.Edges {
		if e.ID != wantIDs[i] {
			t.Errorf("edge %d ID = %q, want %q", i, e.ID, wantIDs[i])
		}
	}
	if l.Edges[1].SourceID != "b" || l.Edges[1].TargetID != "a" {
		t.Errorf("broken cycle edge lost: edge 1 = %s->%s, want b->a", l.Edges[1].SourceID, l.Edges[1].TargetID)
	}
}

func TestBuildContainerOrderStable(t *testing.T) {
	// Interleaved files: containers follow first appearance, members keep
	// node order.
	g := &codegraph.Graph{
		Nodes: []codegraph.Node{
			fn("n1", "b.py"), fn("n2", "a.py"), fn("n3", "b.py"), fn("n4", "c.py"),
		},
	}

	l := mustBuild(t, g, Options{})

	wantLabels := []string{"b.py", "a.py", "c.py"}
	for i, c := range l.Containers {
		if c.Label != wantLabels[i] {
			t.Errorf("container %d label = %q, want %q", i, c.Label, wantLabels[i])
		}
		if c.ID == "" {
			t.Errorf("container %d has empty ID", i)
		}
	}
	if got := l.Containers[0].MemberIDs; !reflect.DeepEqual(got, []string{"n1", "n3"}) {
		t.Errorf("b.py members = %v, want [n1 n3]", got)
	}
}

func TestBuildAnchorsFollowDirection(t *testing.T) {
	g := &codegraph.Graph{Nodes: []codegraph.Node{fn("a", "x.py")}}

	tests := []struct {
		direction  string
		wantSource Anchor
		wantTarget Anchor
	}{
		{DirectionTB, AnchorBottom, AnchorTop},
		{DirectionLR, AnchorRight, AnchorLeft},
	}

	for _, tt := range tests {
		t.Run(tt.direction, func(t *testing.T) {
			l := mustBuild(t, g, Options{Direction: tt.direction})
			n := l.Nodes[0]
			if n.SourceAnchor != tt.wantSource || n.TargetAnchor != tt.wantTarget {
				t.Errorf("anchors = (%s, %s), want (%s, %s)",
					n.SourceAnchor, n.TargetAnchor, tt.wantSource, tt.wantTarget)
			}
		})
	}
}

func TestBuildLeftRightDirection(t *testing.T) {
	g := &codegraph.Graph{
		Nodes: []codegraph.Node{fn("a", "x.py"), fn("b", "x.py")},
		Edges: []codegraph.Edge{{From: "a", To: "b"}},
	}

	l := mustBuild(t, g, Options{Direction: DirectionLR})

	a, _ := l.NodeByID("a")
	b, _ := l.NodeByID("b")
	if b.Position.X <= a.Position.X {
		t.Errorf("b.X = %v, want > a.X = %v for LR flow", b.Position.X, a.Position.X)
	}
	if b.Position.Y != a.Position.Y {
		t.Errorf("b.Y = %v, want %v (single-node ranks align)", b.Position.Y, a.Position.Y)
	}
}

func TestBuildSingleContainerAtMargin(t *testing.T) {
	g := &codegraph.Graph{Nodes: []codegraph.Node{fn("a", "x.py")}}
	l := mustBuild(t, g, Options{})

	c := l.Containers[0]
	if c.Position.X != CanvasMargin || c.Position.Y != CanvasMargin {
		t.Errorf("single container at (%v, %v), want (%v, %v)",
			c.Position.X, c.Position.Y, float64(CanvasMargin), float64(CanvasMargin))
	}
	if c.Size.Width != MinContainerWidth || c.Size.Height != MinContainerHeight {
		t.Errorf("single-member container size = (%v, %v), want floors (%v, %v)",
			c.Size.Width, c.Size.Height, float64(MinContainerWidth), float64(MinContainerHeight))
	}
}

func TestBuildDuplicateNodeFirstWins(t *testing.T) {
	dup := fn("a", "x.py")
	dup.Name = "second"
	g := &codegraph.Graph{
		Nodes: []codegraph.Node{fn("a", "x.py"), dup, fn("b", "x.py")},
	}

	l := mustBuild(t, g, Options{})

	if len(l.Nodes) != 2 {
		t.Fatalf("node count = %d, want 2 (duplicate dropped)", len(l.Nodes))
	}
	if l.Report == nil || len(l.Report.DuplicateNodes) != 1 {
		t.Errorf("Report = %+v, want one duplicate node diagnostic", l.Report)
	}
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	g := &codegraph.Graph{
		Nodes: []codegraph.Node{fn("a", "x.py"), fn("a", "x.py")},
		Edges: []codegraph.Edge{{From: "a", To: "gone"}},
	}
	nodesBefore := len(g.Nodes)
	edgesBefore := len(g.Edges)

	mustBuild(t, g, Options{})

	if len(g.Nodes) != nodesBefore || len(g.Edges) != edgesBefore {
		t.Errorf("Build mutated its input: %d nodes, %d edges", len(g.Nodes), len(g.Edges))
	}
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr errors.Code
	}{
		{name: "zero value", opts: Options{}},
		{name: "explicit TB", opts: Options{Direction: DirectionTB}},
		{name: "explicit LR", opts: Options{Direction: DirectionLR}},
		{name: "unknown direction", opts: Options{Direction: "RL"}, wantErr: errors.ErrCodeInvalidDirection},
		{name: "negative min nodes", opts: Options{HierarchicalMinNodes: -1}, wantErr: errors.ErrCodeInvalidOptions},
		{name: "negative min edges", opts: Options{HierarchicalMinEdges: -2}, wantErr: errors.ErrCodeInvalidOptions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if tt.wantErr != "" {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want code %s", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.opts.Direction == "" {
				t.Error("direction not defaulted")
			}
			if tt.opts.HierarchicalMinNodes != DefaultHierarchicalMinNodes && tt.opts.HierarchicalMinNodes == 0 {
				t.Error("min nodes not defaulted")
			}
		})
	}
}

func TestOptionsValidateIdempotent(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("first call: %v", err)
	}
	first := opts
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if opts != first {
		t.Errorf("second call changed options: %+v vs %+v", opts, first)
	}
}
