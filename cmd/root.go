// Package cmd implements the hson CLI commands, a thin example binary over
// the document library (SPEC_FULL.md §3). It is a companion consumer of the
// core, not part of the core's scope.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// FileIO abstracts the file I/O every subcommand needs, mirroring the
// teacher's per-command IO interfaces (ParseReader, DeleteIO) so tests can
// substitute a fake.
type FileIO interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

// osFileIO implements FileIO using the real filesystem.
type osFileIO struct{}

func newDefaultFileIO() osFileIO { return osFileIO{} }

func (osFileIO) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

func (osFileIO) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// NewRootCmd creates the root hson command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hson",
		Short:         "hson - inspect and edit HSON documents",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	fio := newDefaultFileIO()
	root.AddCommand(NewParseCmd(fio))
	root.AddCommand(NewQueryCmd(fio))
	root.AddCommand(NewSearchCmd(fio))
	root.AddCommand(NewInsertCmd(fio))
	root.AddCommand(NewRemoveCmd(fio))
	root.AddCommand(NewPrettyCmd(fio))
	return root
}

// readInput reads path, or stdin when path is "-".
func readInput(fio FileIO, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := fio.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
