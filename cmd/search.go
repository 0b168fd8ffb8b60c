package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hson-lang/hson/internal/document"
)

// NewSearchCmd creates the search subcommand.
func NewSearchCmd(fio FileIO) *cobra.Command {
	var (
		onID    string
		castOut bool
	)

	cmd := &cobra.Command{
		Use:          "search <file> <pattern>",
		Short:        "Run an enhanced search pipeline against an HSON file",
		Args:         cobra.ExactArgs(2),
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

			var ids []document.ID
			if onID != "" {
				anchor, perr := strconv.ParseInt(onID, 10, 64)
				if perr != nil {
					return fmt.Errorf("invalid --on id %q: %w", onID, perr)
				}
				ids, err = doc.SearchIn(document.ID(anchor), args[1])
			} else {
				ids, err = doc.Search(args[1])
			}
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}

			results := idsToVertices(doc, ids)
			if castOut {
				results = applyCast(results)
			}
			if err = json.NewEncoder(cmd.OutOrStdout()).Encode(results); err != nil {
				return fmt.Errorf("encoding output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&onID, "on", "", "Anchor node id to search from instead of the document root")
	cmd.Flags().BoolVar(&castOut, "cast", false, "Include a best-effort typed reading of each result's value")
	return cmd
}
