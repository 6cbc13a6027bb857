package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rawbytedev/intrusive"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	format  string
)

var log = logrus.WithField("module", "layoutctl")

var rootCmd = &cobra.Command{
	Use:   "layoutctl",
	Short: "Inspect intrusive field layouts",
	Long: `layoutctl reports the offsets of declared intrusive pairings, checks them
against a stored snapshot, and exercises the ownership handles on sample nodes.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case verbose:
			logrus.SetLevel(logrus.DebugLevel)
		case quiet:
			logrus.SetLevel(logrus.ErrorLevel)
		}
		intrusive.SetLogger(logrus.WithField("module", "intrusive"))
		if format != "yaml" && format != "text" {
			return fmt.Errorf("unknown format %q (want yaml or text)", format)
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().StringVar(&format, "format", "text", "Output format: yaml or text")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode
func printInfo(msg string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, msg, args...)
	}
}
