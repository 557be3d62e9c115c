package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/splitpack/splitpack/pkg/graph"
	"github.com/splitpack/splitpack/pkg/pipeline"
)

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		formats string
		noCache bool
		refresh bool
		opts    pipeline.Options
	)

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Lay out a graph component by component",
		Long: `Lay out a graph component by component.

The layout command takes a graph.json file, splits it into connected
components, lays each component out with the configured engine, rotates
every component to its minimum-area bounding box, and packs the boxes
into a compact arrangement.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := c.pipelineOptions()
			if opts.Engine != "" {
				base.Engine = opts.Engine
			}
			if opts.TargetRatio != 0 {
				base.TargetRatio = opts.TargetRatio
			}
			if opts.Border != 0 {
				base.Border = opts.Border
			}
			if formats != "" {
				base.Formats = parseFormats(formats)
			}
			base.Refresh = refresh
			return c.runLayout(cmd.Context(), args[0], base, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file base (default: derived from input)")
	cmd.Flags().StringVarP(&formats, "formats", "f", "", "comma-separated output formats: svg, json")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if cached")
	cmd.Flags().StringVarP(&opts.Engine, "engine", "e", "", "secondary layout engine: dot, neato, fdp, circo, twopi, circular")
	cmd.Flags().Float64Var(&opts.TargetRatio, "ratio", 0, "target width/height ratio of the packing")
	cmd.Flags().Float64Var(&opts.Border, "border", 0, "padding around each component box")

	return cmd
}

// runLayout loads the graph, runs the pipeline, and writes artifacts.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	file, err := graph.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Laying out with %s...", opts.Engine))
	spinner.Start()

	result, err := runner.Execute(ctx, file, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input)) + ".layout"
	}

	printSuccess("Layout complete")
	for _, format := range opts.Formats {
		path := base + "." + format
		if err := os.WriteFile(path, result.Artifacts[format], 0644); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		printFile(path)
	}
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.Stats.ComponentCount, result.CacheHit)
	printNewline()
	printNextStep("Inspect", appName+" inspect "+base+".json")

	return nil
}
