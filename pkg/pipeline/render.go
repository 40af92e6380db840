package pipeline

import (
	"github.com/lynxviz/lynxviz/pkg/codegraph"
	"github.com/lynxviz/lynxviz/pkg/errors"
	"github.com/lynxviz/lynxviz/pkg/layout"
	"github.com/lynxviz/lynxviz/pkg/render"
)

// =============================================================================
// Render Stage
// =============================================================================

// RenderFromLayout generates output artifacts in the requested formats.
//
// The graph supplies node names, kinds, and line numbers for labels; the
// layout supplies geometry and styles. The json format serializes the layout
// itself and needs no Graphviz pass.
func RenderFromLayout(lay *layout.Layout, g *codegraph.Graph, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	if lay == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "layout must not be nil")
	}

	// DOT text is shared by the dot, svg, and png outputs. Build it once,
	// and not at all for json-only requests.
	var dot string
	if needsDOT(opts.Formats) {
		dot = render.ToDOT(lay, g)
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderArtifact(format, dot, lay)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// renderArtifact produces one output artifact. The format has already
// passed validation, so the default branch never fires in practice.
func renderArtifact(format, dot string, lay *layout.Layout) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return render.SVG(dot)
	case FormatPNG:
		return render.PNG(dot)
	case FormatJSON:
		return layout.MarshalLayout(*lay)
	}
	return nil, ValidateFormat(format)
}

func needsDOT(formats []string) bool {
	for _, f := range formats {
		if f == FormatDOT || f == FormatSVG || f == FormatPNG {
			return true
		}
	}
	return false
}

// RenderFromLayoutData renders output from serialized layout data, as
// when the layout stage was satisfied from cache.
func RenderFromLayoutData(layoutData []byte, g *codegraph.Graph, opts Options) (map[string][]byte, error) {
	parsed, err := layout.UnmarshalLayout(layoutData)
	if err != nil {
		return nil, err
	}
	return RenderFromLayout(&parsed, g, opts)
}
