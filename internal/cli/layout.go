package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lynxviz/lynxviz/pkg/codegraph"
	"github.com/lynxviz/lynxviz/pkg/layout"
	"github.com/lynxviz/lynxviz/pkg/pipeline"
)

// layoutCommand creates the layout command for computing visualization layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		variant string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [graph.json|artifact-dir]",
		Short: "Compute a visual layout from a code graph",
		Long: `Compute a visual layout from a code graph.

The layout command takes a graph.json artifact (or a parser output directory
holding combined_graph.json, call_graph.json, and declaration_graph.json) and
computes the layout: one container per source file, hierarchical or grid
placement inside each container, and routed edges. The output is a
layout.json file consumable by the render command and the HTTP API.

When the input is a directory with several graph variants and no --variant
flag is given, an interactive list lets you pick one.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Variant = variant
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when a cached result exists")

	// Layout flags
	cmd.Flags().StringVarP(&opts.Direction, "direction", "d", "", "layout direction: TB (default), LR")
	cmd.Flags().StringVar(&variant, "variant", "", "graph variant for directory input: combined (default), call, declaration")
	cmd.Flags().IntVar(&opts.HierarchicalMinNodes, "min-nodes", 0, "node threshold for hierarchical container layout (default 1)")
	cmd.Flags().IntVar(&opts.HierarchicalMinEdges, "min-edges", 0, "edge threshold for hierarchical container layout (default 1)")

	return cmd
}

// runLayout loads the graph, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
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

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	g, report, _, err := runner.IngestWithCacheInfo(ctx, in.Raw, opts)
	if err != nil {
		spinner.StopWithError("Ingest failed")
		return fmt.Errorf("ingest graph %s: %w", in.Path, err)
	}

	lay, cacheHit, err := runner.GenerateLayoutWithCacheInfo(ctx, g, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	// A cached layout may predate this ingest's diagnostics.
	if lay.Report == nil && report != nil && !report.Empty() {
		lay.Report = report
	}

	outputPath := output
	if outputPath == "" {
		outputPath = defaultLayoutPath(in.Path)
	}

	if err := layout.WriteLayoutFile(*lay, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	if report != nil {
		printWarning("Graph needed cleanup: %s", report.Summary())
	}
	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(lay.Nodes), len(lay.Edges), len(lay.Containers), cacheHit)
	printNewline()
	printNextStep("Render", "lynxviz render "+in.Path)

	return nil
}

// =============================================================================
// Input Resolution
// =============================================================================

// graphInput is a resolved graph artifact ready for the pipeline.
type graphInput struct {
	Raw     []byte
	Path    string
	Variant codegraph.Variant // empty for plain file input
}

// resolveGraphInput turns the positional argument into artifact bytes. A file
// is read directly; a directory is resolved through the variant flag, an
// auto-selected single artifact, or the interactive picker. A nil input with
// a nil error means the user dismissed the picker.
func resolveGraphInput(input, variantFlag string) (*graphInput, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", input, err)
	}

	if !info.IsDir() {
		raw, err := os.ReadFile(input)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", input, err)
		}
		return &graphInput{Raw: raw, Path: input}, nil
	}

	if variantFlag != "" {
		v, err := codegraph.ParseVariant(variantFlag)
		if err != nil {
			return nil, err
		}
		return readVariant(input, v)
	}

	variants, err := codegraph.DiscoverArtifacts(input)
	if err != nil {
		return nil, err
	}
	if len(variants) == 0 {
		return nil, fmt.Errorf("no graph artifacts in %s", input)
	}
	if len(variants) == 1 {
		printInfo("Using %s", StyleHighlight.Render(variants[0].Filename()))
		return readVariant(input, variants[0])
	}

	choices := variantChoices(input, variants)
	if len(choices) == 0 {
		return nil, fmt.Errorf("no readable graph artifacts in %s", input)
	}

	m := NewVariantListModel(choices)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	fm, ok := finalModel.(VariantListModel)
	if !ok || fm.Selected == nil {
		return nil, nil
	}

	raw, err := os.ReadFile(fm.Selected.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", fm.Selected.Path, err)
	}
	return &graphInput{Raw: raw, Path: fm.Selected.Path, Variant: fm.Selected.Variant}, nil
}

// readVariant reads one named artifact from a parser output directory.
func readVariant(dir string, v codegraph.Variant) (*graphInput, error) {
	path := filepath.Join(dir, v.Filename())
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &graphInput{Raw: raw, Path: path, Variant: v}, nil
}

// defaultLayoutPath derives the layout output path from the input artifact.
func defaultLayoutPath(input string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + ".layout.json"
}
