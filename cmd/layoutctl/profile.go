package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/spf13/cobra"

	"github.com/rawbytedev/intrusive"
	"github.com/rawbytedev/intrusive/internal/demo"
)

func init() {
	rootCmd.AddCommand(newProfileCmd())
}

func newProfileCmd() *cobra.Command {
	var (
		iterations int
		memProfile string
	)
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Run handle round trips and write a heap profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfile(iterations, memProfile)
		},
	}
	cmd.Flags().IntVar(&iterations, "iterations", 10000, "Round trips to run")
	cmd.Flags().StringVar(&memProfile, "memprofile", "", "Write a heap profile to this file")
	return cmd
}

func runProfile(iterations int, memProfile string) error {
	if memProfile != "" {
		runtime.MemProfileRate = 1
	}

	start := time.Now()
	sum := 0
	for i := 0; i < iterations; i++ {
		o := intrusive.Take(&demo.Node{Value: i})
		l := demo.NodeLink.IntoField(o)
		sum += demo.NodeLink.Release(l).Value
	}
	elapsed := time.Since(start)
	printInfo("%d round trips in %s (checksum %d)\n", iterations, elapsed, sum)

	if memProfile == "" {
		return nil
	}
	f, err := os.Create(memProfile)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	defer f.Close()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	log.Infof("heap profile written to %s", memProfile)
	return nil
}
