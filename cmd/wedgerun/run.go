package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/wedgerun/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Submit every sweep combination to the execution service",
	Long: `Loads a workflow and its sweep configuration, expands all wedge
axes into combinations, and submits them strictly one at a time,
reporting progress and an estimated time to completion.`,
	Run: func(cmd *cobra.Command, args []string) {
		workflow, _ := cmd.Flags().GetString("workflow")
		configPath, _ := cmd.Flags().GetString("config")
		configStdin, _ := cmd.Flags().GetBool("config-stdin")
		outputNode, _ := cmd.Flags().GetString("output-node")
		limit, _ := cmd.Flags().GetInt("limit")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		printPlan, _ := cmd.Flags().GetBool("print-combinations")
		confirm, _ := cmd.Flags().GetBool("confirm")
		noConfirm, _ := cmd.Flags().GetBool("no-confirm")
		pollInterval, _ := cmd.Flags().GetDuration("poll-interval")
		logLevel, _ := cmd.Flags().GetString("log-level")

		if confirm && noConfirm {
			fmt.Fprintln(os.Stderr, "Error: use either --confirm or --no-confirm, not both.")
			os.Exit(1)
		}
		if cmd.Flags().Changed("limit") && limit <= 0 {
			fmt.Fprintln(os.Stderr, "Error: --limit must be a positive integer.")
			os.Exit(1)
		}
		if !cmd.Flags().Changed("limit") {
			limit = -1
		}

		opts := cli.RunOptions{
			WorkflowPath: workflow,
			ConfigPath:   configPath,
			ConfigStdin:  configStdin,
			OutputNode:   outputNode,
			Limit:        limit,
			DryRun:       dryRun,
			PrintPlan:    printPlan,
			Confirm:      confirm && !noConfirm,
			PollInterval: pollInterval,
			LogLevel:     logLevel,
		}
		if err := cli.RunSubmit(context.Background(), opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("workflow", "", "Workflow JSON path (required)")
	runCmd.Flags().String("config", "", "Config path; defaults to a wedge_config.json next to the workflow")
	runCmd.Flags().Bool("config-stdin", false, "Read the sweep configuration JSON from stdin")
	runCmd.Flags().String("output-node", "OUT_image", "Preferred output node title to receive the generated name")
	runCmd.Flags().Int("limit", 0, "Limit the number of combinations to submit")
	runCmd.Flags().Bool("dry-run", false, "List the combinations that would run without submitting")
	runCmd.Flags().Bool("print-combinations", false, "Print each combination before submitting")
	runCmd.Flags().Bool("confirm", false, "Ask for confirmation before submitting")
	runCmd.Flags().Bool("no-confirm", false, "Skip the confirmation prompt")
	runCmd.Flags().Duration("poll-interval", time.Second, "Completion polling interval")

	_ = runCmd.MarkFlagRequired("workflow")
}
