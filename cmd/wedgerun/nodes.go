package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/wedgerun/pkg/adapters/comfy"
)

// nodesCmd represents the nodes command
var nodesCmd = &cobra.Command{
	Use:   "nodes <workflow> [node-title]",
	Short: "List a workflow's node titles, or one node's parameters",
	Long: `Convenience listing for building configs: without a node title,
prints every titled node in the workflow; with one, prints that node's
input parameter names. Malformed nodes are skipped silently.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		workflow, err := comfy.LoadWorkflow(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if len(args) == 2 {
			for _, p := range workflow.ParamsFor(args[1]) {
				fmt.Println(p)
			}
			return
		}
		for _, t := range workflow.NodeTitles() {
			fmt.Println(t)
		}
	},
}

func init() {
	rootCmd.AddCommand(nodesCmd)
}
