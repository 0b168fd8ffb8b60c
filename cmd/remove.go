package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hson-lang/hson/external/notify"
	"github.com/hson-lang/hson/internal/document"
)

// removeOutput is the JSON output schema for the remove command.
type removeOutput struct {
	Changed bool   `json:"changed"`
	Result  string `json:"result"`
}

// NewRemoveCmd creates the remove subcommand.
func NewRemoveCmd(fio FileIO) *cobra.Command {
	var (
		nodeID   int64
		notifyOn bool
	)

	cmd := &cobra.Command{
		Use:          "remove <file>",
		Short:        "Remove a node and its subtree, and write the file back",
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

			if err = doc.Remove(document.ID(nodeID)); err != nil {
				return fmt.Errorf("remove: %w", err)
			}

			result := doc.Stringify()
			if err = json.NewEncoder(cmd.OutOrStdout()).Encode(removeOutput{Changed: true, Result: result}); err != nil {
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

	cmd.Flags().Int64Var(&nodeID, "id", 0, "Id of the node to remove")
	cmd.Flags().BoolVar(&notifyOn, "notify", false, "Log each document event to stderr as it fires")
	return cmd
}
