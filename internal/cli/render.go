package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lynxviz/lynxviz/pkg/pipeline"
)

// renderCommand creates the render command for generating visual outputs.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		variant    string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [graph.json|artifact-dir]",
		Short: "Render a code graph to DOT, SVG, or PNG",
		Long: `Render a code graph to DOT, SVG, or PNG.

The render command runs the full pipeline: ingest the graph artifact, compute
the layout, and render the requested formats. Each stage is cached, so
re-rendering an unchanged graph in a new format only pays for the rendering.

The json format writes the computed layout document, the same payload the
layout command produces.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Variant = variant
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when a cached result exists")

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, png, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.Direction, "direction", "d", "", "layout direction: TB (default), LR")
	cmd.Flags().StringVar(&variant, "variant", "", "graph variant for directory input: combined (default), call, declaration")
	cmd.Flags().IntVar(&opts.HierarchicalMinNodes, "min-nodes", 0, "node threshold for hierarchical container layout (default 1)")
	cmd.Flags().IntVar(&opts.HierarchicalMinEdges, "min-edges", 0, "edge threshold for hierarchical container layout (default 1)")

	return cmd
}

// runRender runs the full pipeline on the input and writes each artifact.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	in, err := resolveGraphInput(input, opts.Variant)
	if err != nil {
		return err
	}
	if in == nil {
		printDetail("No selection made")
		return nil
	}
	if in.Variant != "" {
		opts.Variant = string(in.Variant)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", strings.Join(opts.Formats, ", ")))
	spinner.Start()

	res, err := runner.Execute(ctx, in.Raw, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render %s: %w", in.Path, err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if res.Report != nil {
		printWarning("Graph needed cleanup: %s", res.Report.Summary())
	}
	printSuccess("Render complete")

	base := basePath(output, in.Path)
	for _, format := range opts.Formats {
		path := artifactPath(base, format)
		if err := os.WriteFile(path, res.Artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	printStats(res.Stats.NodeCount, res.Stats.EdgeCount, res.Stats.ContainerCount, res.CacheInfo.RenderHit)
	return nil
}

// =============================================================================
// Output Paths
// =============================================================================

// basePath derives the base output path from the output and input file paths.
// An empty output falls back to the input with its extension stripped; an
// output carrying a known format extension loses that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// artifactPath names one output file. The json artifact is the layout
// document, so it takes a .layout.json suffix; otherwise
// "render -f json graph.json" would overwrite its own input.
func artifactPath(base, format string) string {
	if format == pipeline.FormatJSON {
		return base + ".layout.json"
	}
	return base + "." + format
}
