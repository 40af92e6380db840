package pipeline

import (
	"github.com/lynxviz/lynxviz/pkg/codegraph"
	"github.com/lynxviz/lynxviz/pkg/errors"
)

// =============================================================================
// Ingest Stage
// =============================================================================

// Ingest parses a raw graph artifact and normalizes it.
//
// Recoverable problems (duplicate ids, dangling edges, unknown kinds) are
// cleaned up and listed in the report; the report is nil when the input was
// already clean. Structurally broken JSON fails the stage.
func Ingest(raw []byte, opts Options) (*codegraph.Graph, *codegraph.Report, error) {
	if err := opts.ValidateForIngest(); err != nil {
		return nil, nil, err
	}

	parsed, err := codegraph.UnmarshalGraph(raw)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "parse graph artifact")
	}

	normalized, report, err := codegraph.Normalize(parsed)
	if err != nil {
		return nil, nil, err
	}
	if report != nil && report.Empty() {
		report = nil
	}
	return &normalized, report, nil
}

// ingestEnvelope is the cached form of an ingest result. The report rides
// along so cache hits and misses produce identical diagnostics.
type ingestEnvelope struct {
	Graph  codegraph.Graph   `json:"graph"`
	Report *codegraph.Report `json:"report,omitempty"`
}
