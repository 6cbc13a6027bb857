package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rawbytedev/intrusive"
	"github.com/rawbytedev/intrusive/internal/demo"
)

func init() {
	rootCmd.AddCommand(newChainCmd())
}

func newChainCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Link sample nodes through their field and walk them back",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChain(n)
		},
	}
	cmd.Flags().IntVarP(&n, "n", "n", 3, "Number of nodes")
	return cmd
}

func runChain(n int) error {
	if n < 0 {
		return fmt.Errorf("--n must not be negative, got %d", n)
	}
	values := make([]int, n)
	for i := range values {
		values[i] = i + 1
	}
	c := demo.BuildNodes(values)
	log.Debugf("built chain of %d nodes", c.Len())

	var walkErr error
	c.Walk(func(o *intrusive.Owned[demo.Link]) bool {
		s, err := o.BorrowShared()
		if err != nil {
			walkErr = err
			return false
		}
		node := demo.NodeLink.SharedContainer(s)
		printInfo("node %d at %p, link at %p\n", node.Get().Value, node.Get(), demo.NodeLink.FieldOf(node.Get()))
		node.Release()
		return true
	})
	if walkErr != nil {
		return walkErr
	}

	printInfo("drained: %v\n", demo.DrainValues(c))
	return nil
}
