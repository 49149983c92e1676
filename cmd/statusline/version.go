package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/statusline"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of statusline",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "statusline version %s\n", strings.TrimSpace(statusline.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
