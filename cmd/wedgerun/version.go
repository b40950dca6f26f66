package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/wedgerun"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of wedgerun",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wedgerun version %s\n", strings.TrimSpace(wedgerun.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
