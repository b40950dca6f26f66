package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/wedgerun/internal/cli"
	"github.com/aretw0/wedgerun/pkg/schema"
)

// configCmd groups the config editing subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit a sweep configuration file",
}

var setOverrideCmd = &cobra.Command{
	Use:   "set-override <config> <node> <param> <value>",
	Short: "Add or replace a static parameter override",
	Args:  cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		editConfig(args[0], func(cfg *schema.SweepConfig) error {
			cfg.SetOverride(args[1], args[2], cli.ParseTypedValue(args[3]))
			return nil
		})
	},
}

var removeOverrideCmd = &cobra.Command{
	Use:   "remove-override <config> <node> <param>",
	Short: "Remove a static parameter override",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		editConfig(args[0], func(cfg *schema.SweepConfig) error {
			if !cfg.RemoveOverride(args[1], args[2]) {
				return fmt.Errorf("no override for %s.%s", args[1], args[2])
			}
			return nil
		})
	},
}

var setWedgeCmd = &cobra.Command{
	Use:   "set-wedge <config> <node> <param>",
	Short: "Add or replace a wedge axis declaration",
	Long: `Declares a varying axis for (node, param). With --type minmax,
--values is a 'min,max,step' triple; with --type explicit, --values is a
comma-separated value list. Values are parsed as booleans, integers
(decimal or 0x hex), floats, then strings, in that order.`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		kind, _ := cmd.Flags().GetString("type")
		values, _ := cmd.Flags().GetString("values")
		editConfig(args[0], func(cfg *schema.SweepConfig) error {
			var spec []any
			switch schema.WedgeKind(kind) {
			case schema.WedgeMinMax:
				triple, err := cli.ParseMinMax(values)
				if err != nil {
					return err
				}
				spec = triple
			case schema.WedgeExplicit:
				spec = cli.ParseValueList(values)
				if len(spec) == 0 {
					return fmt.Errorf("explicit wedge needs at least one value")
				}
			default:
				return fmt.Errorf("unsupported wedge type %q", kind)
			}
			return cfg.SetWedge(args[1], args[2], spec, schema.WedgeKind(kind))
		})
	},
}

var removeWedgeCmd = &cobra.Command{
	Use:   "remove-wedge <config> <node> <param>",
	Short: "Remove a wedge axis declaration",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		editConfig(args[0], func(cfg *schema.SweepConfig) error {
			if !cfg.RemoveWedge(args[1], args[2]) {
				return fmt.Errorf("no wedge for %s.%s", args[1], args[2])
			}
			return nil
		})
	},
}

// editConfig loads, mutates, and saves a config file, exiting on error.
// Saving always writes the canonical shape, upgrading legacy files.
func editConfig(path string, mutate func(*schema.SweepConfig) error) {
	cfg, err := schema.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := mutate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := schema.Save(cfg, path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(setOverrideCmd)
	configCmd.AddCommand(removeOverrideCmd)
	configCmd.AddCommand(setWedgeCmd)
	configCmd.AddCommand(removeWedgeCmd)

	setWedgeCmd.Flags().String("type", "minmax", "Wedge type: minmax or explicit")
	setWedgeCmd.Flags().String("values", "", "Axis values: 'min,max,step' or a comma-separated list")
	_ = setWedgeCmd.MarkFlagRequired("values")
}
