package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ben-mad-jlp/wireform/pkg/pipeline"
)

// previewCommand creates the preview command for inspecting layouts in the terminal.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "preview [document.json]",
		Short: "Preview a computed layout in the terminal",
		Long: `Preview a computed layout as scaled boxes in the terminal.

The preview command lays out the document and opens an interactive view
where every component's bounds are drawn to scale. Use the arrow keys to
step through components and inspect their rectangles.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd, args[0], opts, noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&opts.Viewport, "viewport", "", "viewport class: narrow, medium, wide (overrides document)")
	cmd.Flags().StringVar(&opts.Arrangement, "arrangement", "", "screen arrangement: side-by-side, stacked (overrides document)")

	return cmd
}

func (c *CLI) runPreview(cmd *cobra.Command, input string, opts pipeline.Options, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.DocumentPath = input
	opts.Logger = c.Logger

	result, err := runner.Execute(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	model := newPreviewModel(result)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run preview: %w", err)
	}
	return nil
}
