package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/splitpack/splitpack/pkg/graph"
	"github.com/splitpack/splitpack/pkg/render"
)

// visualizeCommand creates the visualize command, which renders an
// already laid-out graph file to SVG without recomputing anything.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		output string
		margin float64
		labels bool
	)

	cmd := &cobra.Command{
		Use:   "visualize [layout.json]",
		Short: "Render a laid-out graph file to SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			p := newProgress(loggerFromContext(cmd.Context()))

			file, err := graph.ReadFile(input)
			if err != nil {
				return fmt.Errorf("load layout %s: %w", input, err)
			}
			_, d, err := file.Build()
			if err != nil {
				return fmt.Errorf("build graph: %w", err)
			}

			svgOpts := []render.SVGOption{render.WithMargin(margin)}
			if labels {
				svgOpts = append(svgOpts, render.WithLabels())
			}
			svg := render.SVG(d, svgOpts...)

			path := outputPath(input, output, ".svg")
			if err := os.WriteFile(path, svg, 0644); err != nil {
				return fmt.Errorf("write output %s: %w", path, err)
			}

			p.done(fmt.Sprintf("Rendered %d nodes", len(file.Nodes)))
			printSuccess("Rendered SVG")
			printFile(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.svg)")
	cmd.Flags().Float64Var(&margin, "margin", 10, "whitespace around the drawing")
	cmd.Flags().BoolVar(&labels, "labels", true, "draw node ID labels")

	return cmd
}
