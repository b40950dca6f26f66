package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wedgerun",
	Short: "Wedgerun drives parameter sweeps over node-graph workflows",
	Long: `Wedgerun expands a declarative sweep configuration into every
combination of parameter values and submits them, one at a time, to a
ComfyUI-compatible execution service.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "info", "Logging level (debug, info, warn, error)")
}
