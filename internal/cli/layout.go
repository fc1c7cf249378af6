package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ben-mad-jlp/wireform/pkg/diagram"
	"github.com/ben-mad-jlp/wireform/pkg/pipeline"
)

// layoutCommand creates the layout command for computing wireframe layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [document.json]",
		Short: "Compute absolute bounds for every component in a document",
		Long: `Compute absolute bounds for every component in a wireframe document.

The layout command reads a document file, sizes a canvas for its screens,
and runs flexbox-style distribution over each component tree. The output is
a layout.json file mapping every node ID to its canvas rectangle, ready for
a renderer to draw.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if cached")

	// Layout flags
	cmd.Flags().StringVar(&opts.Viewport, "viewport", "", "viewport class: narrow, medium, wide (overrides document)")
	cmd.Flags().StringVar(&opts.Arrangement, "arrangement", "", "screen arrangement: side-by-side, stacked (overrides document)")
	cmd.Flags().BoolVar(&opts.LeavesOnly, "leaves-only", false, "emit terminal components only, no container frames")

	return cmd
}

// runLayout runs the pipeline on the document and writes the result file.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.DocumentPath = input
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := diagram.WriteResultFile(result.Layout, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(result.Stats.ScreenCount, result.Stats.NodeCount, result.CacheInfo.LayoutHit)
	printDetail("canvas %.0f×%.0f", result.Layout.Canvas.Width, result.Layout.Canvas.Height)
	printNewline()
	printNextStep("Preview", "wireform preview "+input)

	return nil
}
