// Package cli implements the lynxviz command-line interface.
//
// Four commands cover the pipeline end to end: layout computes geometry
// from a parser artifact, render turns layouts into DOT, SVG, PNG, or
// JSON, serve exposes the same pipeline over HTTP, and cache manages
// the on-disk result store. Commands are wired with cobra and log
// through a shared charmbracelet logger; --verbose switches it to
// debug level.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lynxviz/lynxviz/pkg/buildinfo"
	"github.com/lynxviz/lynxviz/pkg/cache"
	"github.com/lynxviz/lynxviz/pkg/pipeline"
)

// appName names the binary and the per-user cache directory.
const appName = "lynxviz"

// Log levels re-exported so main does not import the log package itself.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI State
// =============================================================================

// CLI carries the state every command shares, currently just the logger.
type CLI struct {
	Logger *log.Logger
}

// New builds a CLI logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel adjusts the shared logger, used when --verbose is parsed
// after construction.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand assembles the root cobra command with every subcommand
// attached.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "lynxviz",
		Short:        "Lynxviz computes visual layouts for code-relationship graphs",
		Long:         `Lynxviz takes code graphs produced by a parser (declarations, calls, imports) and computes deterministic visual layouts: one container per source file, hierarchical or grid placement inside each container, and rendered DOT/SVG/PNG output.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(
		c.layoutCommand(),
		c.renderCommand(),
		c.serveCommand(),
		c.cacheCommand(),
		c.completionCommand(),
	)
	return root
}

// =============================================================================
// Runner Wiring
// =============================================================================

// newRunner builds a pipeline runner backed by the standard CLI cache.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

// newCache picks the cache backend for a command invocation. When the
// cache directory cannot be resolved the command still runs, just
// without caching.
func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if dir, err := cacheDir(); err == nil {
		return cache.NewFileCache(dir)
	}
	return cache.NewNullCache(), nil
}

// cacheDir resolves the per-user cache directory. UserCacheDir honors
// XDG_CACHE_HOME before falling back to ~/.cache.
func cacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appName), nil
}

// parseFormats splits the --formats flag value, defaulting to SVG when
// the flag is empty. Entries are trimmed so "svg, png" parses cleanly.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
