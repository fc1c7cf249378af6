package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ben-mad-jlp/wireform/pkg/pipeline"
	"github.com/ben-mad-jlp/wireform/pkg/wireframe"
)

// canvasCommand creates the canvas command for sizing a canvas without a document.
func (c *CLI) canvasCommand() *cobra.Command {
	var (
		viewport    string
		arrangement string
		screens     int
	)

	cmd := &cobra.Command{
		Use:   "canvas",
		Short: "Compute canvas dimensions for a screen count",
		Long: `Compute the canvas dimensions a set of screens would occupy.

Each screen gets a box sized for the viewport class plus padding and a label
band; boxes are tiled side by side or stacked with a fixed gap. This command
answers "how big is the canvas" without laying out any components.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCanvas(viewport, arrangement, screens)
		},
	}

	cmd.Flags().StringVar(&viewport, "viewport", string(pipeline.DefaultViewport), "viewport class: narrow, medium, wide")
	cmd.Flags().StringVar(&arrangement, "arrangement", string(pipeline.DefaultArrangement), "screen arrangement: side-by-side, stacked")
	cmd.Flags().IntVarP(&screens, "screens", "n", 1, "number of screens")

	return cmd
}

func runCanvas(viewport, arrangement string, screens int) error {
	if !pipeline.ValidViewports[viewport] {
		return fmt.Errorf("invalid viewport %q (must be one of: narrow, medium, wide)", viewport)
	}
	if !pipeline.ValidArrangements[arrangement] {
		return fmt.Errorf("invalid arrangement %q (must be one of: side-by-side, stacked)", arrangement)
	}

	frame := wireframe.Frame{
		Viewport:    wireframe.ViewportClass(viewport),
		Arrangement: wireframe.Arrangement(arrangement),
	}
	dims, err := frame.Dimensions(screens)
	if err != nil {
		return err
	}

	printKeyValue("viewport", viewport)
	printKeyValue("arrangement", arrangement)
	printKeyValue("screens", fmt.Sprintf("%d", screens))
	printKeyValue("canvas", fmt.Sprintf("%.0f × %.0f", dims.Width, dims.Height))
	return nil
}
