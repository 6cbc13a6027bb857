package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rawbytedev/intrusive"
	"github.com/rawbytedev/intrusive/pkg/layout"
)

func init() {
	rootCmd.AddCommand(newVerifyCmd())
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <snapshot.yaml>",
		Short: "Compare declared layouts against a snapshot",
		Long: `The verify command loads a snapshot written by "layoutctl dump --format yaml"
and fails if any pairing moved, changed type, or disappeared.

Example:
  layoutctl verify layout.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args[0])
		},
	}
}

func runVerify(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}
	want, err := layout.Unmarshal(data)
	if err != nil {
		return err
	}
	got := layout.FromDescriptors(intrusive.Descriptors())

	drift := layout.Diff(want, got)
	for _, d := range drift {
		log.Error(d.String())
	}
	if len(drift) > 0 {
		return fmt.Errorf("%d of %d pairings drifted", len(drift), len(want))
	}
	printInfo("%d pairings match %s\n", len(want), path)
	return nil
}
