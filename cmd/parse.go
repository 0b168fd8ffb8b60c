package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hson-lang/hson/external/loader"
)

// parseOutput is the JSON output schema for the parse command.
type parseOutput struct {
	ID        string       `json:"id"`
	Nodes     []vertexJSON `json:"nodes"`
	NodeCount int          `json:"node_count"`
}

// NewParseCmd creates the parse subcommand.
func NewParseCmd(fio FileIO) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "parse <file>",
		Short:        "Parse an HSON file (optionally with YAML front matter) and print its nodes as JSON",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readInput(fio, args[0])
			if err != nil {
				return err
			}

			meta, err := loader.LoadBytes(content)
			if err != nil {
				return fmt.Errorf("parsing: %w", err)
			}

			ids := meta.Doc.All()
			out := parseOutput{
				ID:        meta.ID.String(),
				Nodes:     idsToVertices(meta.Doc, ids),
				NodeCount: meta.Doc.Len(),
			}
			if err = json.NewEncoder(cmd.OutOrStdout()).Encode(out); err != nil {
				return fmt.Errorf("encoding output: %w", err)
			}
			return nil
		},
	}
	return cmd
}
