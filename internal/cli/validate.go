package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ben-mad-jlp/wireform/pkg/diagram"
	"github.com/ben-mad-jlp/wireform/pkg/errors"
)

// validateCommand creates the validate command for checking documents.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [document.json]",
		Short: "Check a wireframe document without laying it out",
		Long: `Check a wireframe document for structural problems.

Validation covers the document shape (at least one screen, known viewport
and arrangement) and every component tree (known kinds, unique IDs, leaves
without children). Nothing is laid out and nothing is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func runValidate(path string) error {
	doc, err := diagram.ReadDocumentFile(path)
	if err != nil {
		printError("Document is invalid")
		printDetail("%s", errors.UserMessage(err))
		if code := errors.GetCode(err); code != "" {
			printDetail("code: %s", code)
		}
		return err
	}

	name := doc.Name
	if name == "" {
		name = path
	}
	printSuccess("Document %q is valid", name)
	printStats(len(doc.Screens), doc.NodeCount(), false)
	printNewline()
	printNextStep("Layout", fmt.Sprintf("wireform layout %s", path))
	return nil
}
