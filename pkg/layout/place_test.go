package layout

import "testing"

func sized(widths ...float64) []Container {
	cs := make([]Container, len(widths))
	for i, w := range widths {
		cs[i] = Container{Size: Size{Width: w, Height: MinContainerHeight}}
	}
	return cs
}

func TestPlaceContainersEmpty(t *testing.T) {
	PlaceContainers(nil)
	PlaceContainers([]Container{})
}

func TestPlaceContainersSingle(t *testing.T) {
	cs := sized(800)
	PlaceContainers(cs)
	if cs[0].Position.X != CanvasMargin || cs[0].Position.Y != CanvasMargin {
		t.Errorf("single container at (%v, %v), want canvas margin",
			cs[0].Position.X, cs[0].Position.Y)
	}
}

func TestPlaceContainersRow(t *testing.T) {
	// 2-3 containers pack left to right by actual width plus the gap.
	cs := sized(800, 976, 800)
	PlaceContainers(cs)

	wantX := []float64{
		CanvasMargin,
		CanvasMargin + 800 + ContainerGap,
		CanvasMargin + 800 + ContainerGap + 976 + ContainerGap,
	}
	for i, c := range cs {
		if c.Position.X != wantX[i] {
			t.Errorf("container %d X = %v, want %v", i, c.Position.X, wantX[i])
		}
		if c.Position.Y != CanvasMargin {
			t.Errorf("container %d Y = %v, want %v", i, c.Position.Y, float64(CanvasMargin))
		}
	}
}

func TestPlaceContainersGrid(t *testing.T) {
	// Four containers: cols = ceil(sqrt(4)) = 2, fixed-width slots.
	cs := sized(800, 800, 800, 800)
	cs[1].Size.Height = 700 // tallest in row one drives row two's Y

	PlaceContainers(cs)

	if cs[1].Position.X != CanvasMargin+GridSlotWidth {
		t.Errorf("slot X = %v, want %v", cs[1].Position.X, CanvasMargin+GridSlotWidth)
	}
	wantRowTwoY := CanvasMargin + 700 + GridRowGap
	if cs[2].Position.Y != wantRowTwoY {
		t.Errorf("row two Y = %v, want %v (max height + gap)", cs[2].Position.Y, wantRowTwoY)
	}
	if cs[2].Position.X != CanvasMargin || cs[3].Position.X != CanvasMargin+GridSlotWidth {
		t.Errorf("row two X = (%v, %v), want slots from the margin",
			cs[2].Position.X, cs[3].Position.X)
	}
}

func TestPlaceContainersNoOverlap(t *testing.T) {
	for _, count := range []int{1, 2, 3, 4, 5, 7, 9, 12} {
		widths := make([]float64, count)
		for i := range widths {
			widths[i] = 800
		}
		cs := sized(widths...)
		PlaceContainers(cs)

		for i := 0; i < len(cs); i++ {
			for j := i + 1; j < len(cs); j++ {
				a, b := cs[i], cs[j]
				overlapX := a.Position.X < b.Position.X+b.Size.Width && b.Position.X < a.Position.X+a.Size.Width
				overlapY := a.Position.Y < b.Position.Y+b.Size.Height && b.Position.Y < a.Position.Y+a.Size.Height
				if overlapX && overlapY {
					t.Errorf("count=%d: containers %d and %d overlap", count, i, j)
				}
			}
		}
	}
}
