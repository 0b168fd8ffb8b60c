package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hson-lang/hson/external/prettyprint"
	"github.com/hson-lang/hson/internal/document"
)

// NewPrettyCmd creates the pretty subcommand.
func NewPrettyCmd(fio FileIO) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "pretty <file>",
		Short:        "Print an indented rendering of an HSON file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readInput(fio, args[0])
			if err != nil {
				return err
			}
			doc, err := document.Parse(string(content))
			if err != nil {
				return fmt.Errorf("parsing: %w", err)
			}

			return prettyprint.Fprint(cmd.OutOrStdout(), doc.Stringify())
		},
	}
	return cmd
}
