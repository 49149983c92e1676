package main

import (
	"github.com/aretw0/statusline/internal/cli"
	"github.com/spf13/cobra"
)

var counterCmd = &cobra.Command{
	Use:   "counter",
	Short: "Increment a counter as fast as possible and show only what each redraw sees",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions(cmd)
		opts.Increments, _ = cmd.Flags().GetInt64("increments")
		return cli.Execute(cmd.Context(), cli.DemoCounter, opts)
	},
}

func init() {
	rootCmd.AddCommand(counterCmd)

	counterCmd.Flags().Int64("increments", 0, "Number of increments (overrides config)")
}
