package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hson-lang/hson/external/notify"
	"github.com/hson-lang/hson/internal/document"
)

// insertOutput is the JSON output schema for the insert command.
type insertOutput struct {
	Changed bool   `json:"changed"`
	Result  string `json:"result"`
}

// NewInsertCmd creates the insert subcommand.
func NewInsertCmd(fio FileIO) *cobra.Command {
	var (
		parentID int64
		position int
		fragment string
		notifyOn bool
	)

	cmd := &cobra.Command{
		Use:          "insert <file>",
		Short:        "Insert a fragment as children of a node and write the file back",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			content, err := readInput(fio, path)
			if err != nil {
				return err
			}
			doc, err := document.Parse(string(content))
			if err != nil {
				return fmt.Errorf("parsing: %w", err)
			}
			if notifyOn {
				doc.Subscribe(notify.NewLogger(cmd.ErrOrStderr()).Subscribe())
			}

			if err = doc.Insert(document.ID(parentID), position, fragment); err != nil {
				return fmt.Errorf("insert: %w", err)
			}

			result := doc.Stringify()
			if err = json.NewEncoder(cmd.OutOrStdout()).Encode(insertOutput{Changed: true, Result: result}); err != nil {
				return fmt.Errorf("encoding output: %w", err)
			}

			if path != "-" {
				if err = fio.WriteFile(path, []byte(result)); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&parentID, "parent", 0, "Id of the node to insert children into")
	cmd.Flags().IntVar(&position, "position", 0, "Child position to insert before")
	cmd.Flags().StringVar(&fragment, "fragment", "", "HSON fragment text to insert (its own root contributes no node)")
	cmd.Flags().BoolVar(&notifyOn, "notify", false, "Log each document event to stderr as it fires")
	return cmd
}
