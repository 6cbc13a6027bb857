package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rawbytedev/intrusive"
	_ "github.com/rawbytedev/intrusive/internal/demo"
	"github.com/rawbytedev/intrusive/pkg/layout"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the layout of every declared pairing",
		Long: `The dump command prints container, field path, offset, alignment and size
for every pairing declared in this binary.

Example:
  layoutctl dump
  layoutctl dump --format yaml > layout.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump()
		},
	}
}

func runDump() error {
	entries := layout.FromDescriptors(intrusive.Descriptors())
	log.Debugf("dumping %d pairings", len(entries))
	if format == "yaml" {
		b, err := layout.Marshal(entries)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(b)
		return err
	}
	return layout.WriteText(os.Stdout, entries)
}
