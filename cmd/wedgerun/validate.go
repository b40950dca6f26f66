package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/wedgerun/pkg/domain"
	"github.com/aretw0/wedgerun/pkg/schema"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <config>",
	Short: "Validate a sweep configuration and report its axes",
	Long: `Loads and normalizes a sweep configuration, expands every wedge
declaration, and reports the axis sizes and the total combination count
without submitting anything.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := schema.Load(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		axes, err := domain.BuildAxes(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Config OK: output_folder=%s prefix=%s url=%s\n", cfg.OutputFolder, cfg.FilenamePrefix, cfg.URL)
		for _, ax := range axes {
			fmt.Printf("  axis %s.%s: %d value(s)\n", ax.Key.Node, ax.Key.Param, len(ax.Values))
		}
		fmt.Printf("Total combinations: %d\n", domain.TotalCount(axes))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
