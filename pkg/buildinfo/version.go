// Package buildinfo carries build-time version metadata.
//
// Release builds stamp the variables via ldflags:
//
//	go build -ldflags "-X github.com/lynxviz/lynxviz/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/lynxviz/lynxviz/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/lynxviz/lynxviz/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// The CLI surfaces them through --version and the server through the
// health endpoint.
package buildinfo

import "fmt"

// Unstamped builds report these placeholders.
var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
