package layout

import "math"

// GridShape computes the square-ish column/row split for n members:
// cols = ceil(sqrt(n)), rows = ceil(n/cols). The same split drives both
// container sizing and the grid placement strategy, so an edge-free
// container is always exactly as large as its raster needs.
//
// Returns (0, 0) for n <= 0.
func GridShape(n int) (cols, rows int) {
	if n <= 0 {
		return 0, 0
	}
	cols = int(math.Ceil(math.Sqrt(float64(n))))
	rows = (n + cols - 1) / cols
	return cols, rows
}

// ContainerSize estimates a container's footprint from its member count
// alone; edges are never inspected. The content grid is padded on every
// side and floored at the minimum dimensions so small containers keep a
// legible title band.
//
// The estimate is monotonically non-decreasing in memberCount. Hierarchical
// containers may later grow beyond it when their layered extent is wider
// than the square grid, but never shrink below it.
func ContainerSize(memberCount int) Size {
	cols, rows := GridShape(memberCount)
	w := 2*HorizontalPad + span(cols, NodeWidth, NodeGapX)
	h := TitleBand + span(rows, NodeHeight, NodeGapY) + VerticalPad
	return Size{
		Width:  max(w, MinContainerWidth),
		Height: max(h, MinContainerHeight),
	}
}

// growContainer widens a container when the given content extent, plus
// padding and title band, exceeds its current footprint. Footprints only
// grow: the count-based estimate and the minimum floors stay lower bounds,
// which keeps sizing monotone even when layering spreads a container wide.
func growContainer(c *Container, content Size) {
	required := Size{
		Width:  2*HorizontalPad + content.Width,
		Height: TitleBand + content.Height + VerticalPad,
	}
	c.Size.Width = max(c.Size.Width, required.Width)
	c.Size.Height = max(c.Size.Height, required.Height)
}

// span is the extent of count cells separated by gap. Zero for count <= 0.
func span(count int, cell, gap float64) float64 {
	if count <= 0 {
		return 0
	}
	return float64(count)*cell + float64(count-1)*gap
}
