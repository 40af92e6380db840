package layout

// =============================================================================
// Geometry Constants
// =============================================================================

// All output geometry derives from these constants. They are exported because
// the rendering surface needs the same cell size to draw nodes at the
// positions the engine emits. Units are canvas units (pixels at zoom 1).
const (
	// NodeWidth and NodeHeight are the drawn size of a single node cell.
	NodeWidth  = 172.0
	NodeHeight = 36.0

	// NodeGapX and NodeGapY separate adjacent cells inside a container.
	NodeGapX = 80.0
	NodeGapY = 50.0

	// HorizontalPad is reserved on each side of a container's content.
	HorizontalPad = 150.0

	// TitleBand is reserved at the top of a container for its file label.
	// Member positions start below it.
	TitleBand = 100.0

	// VerticalPad is reserved below a container's content.
	VerticalPad = 100.0

	// MinContainerWidth and MinContainerHeight floor every container
	// footprint so single-member containers stay legible.
	MinContainerWidth  = 800.0
	MinContainerHeight = 500.0

	// ContainerGap separates containers placed left-to-right in a single
	// row (the 2-3 container regime).
	ContainerGap = 300.0

	// GridSlotWidth is the fixed column width for grid-placed containers
	// (the >3 container regime). Containers sit in slots rather than being
	// packed by actual width; the wasted space buys determinism.
	GridSlotWidth = 1200.0

	// GridRowGap separates grid rows of containers.
	GridRowGap = 200.0

	// CanvasMargin offsets the first container from the canvas origin.
	CanvasMargin = 50.0
)
