package layout

import "math"

// PlaceContainers assigns canvas positions to already-sized containers,
// writing Position in place. Three regimes by container count m:
//
//   - m == 1: the container sits at the canvas margin.
//   - 2 <= m <= 3: a single left-to-right row; each x is the running sum
//     of prior widths plus ContainerGap, y fixed at the margin.
//   - m > 3: a grid with cols = ceil(sqrt(m)). Containers occupy fixed
//     GridSlotWidth column slots rather than packing by actual width, and
//     each row advances y by its tallest container plus GridRowGap.
//
// The tiered policy keeps the common few-file case compact: a generic grid
// wastes most of a slot per container when there are only one or two, while
// row packing degrades as file count grows.
//
// Call after intra-container layout so grown hierarchical containers place
// with their final sizes.
func PlaceContainers(containers []Container) {
	m := len(containers)
	switch {
	case m == 0:
		return

	case m == 1:
		containers[0].Position = Point{X: CanvasMargin, Y: CanvasMargin}

	case m <= 3:
		x := float64(CanvasMargin)
		for i := range containers {
			containers[i].Position = Point{X: x, Y: CanvasMargin}
			x += containers[i].Size.Width + ContainerGap
		}

	default:
		cols := int(math.Ceil(math.Sqrt(float64(m))))
		y := float64(CanvasMargin)
		for start := 0; start < m; start += cols {
			end := min(start+cols, m)
			rowHeight := 0.0
			for i := start; i < end; i++ {
				col := i - start
				containers[i].Position = Point{
					X: CanvasMargin + float64(col)*GridSlotWidth,
					Y: y,
				}
				rowHeight = max(rowHeight, containers[i].Size.Height)
			}
			y += rowHeight + GridRowGap
		}
	}
}
