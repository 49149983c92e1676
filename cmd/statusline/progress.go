package main

import (
	"github.com/aretw0/statusline/internal/cli"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Fill a progress bar from one or more worker goroutines",
	Long: `Runs workers that advance a shared counter one item at a time while a
two-line progress bar is redrawn at the configured interval.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions(cmd)
		opts.Total, _ = cmd.Flags().GetUint64("total")
		opts.Workers, _ = cmd.Flags().GetInt("workers")
		return cli.Execute(cmd.Context(), cli.DemoProgress, opts)
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)

	progressCmd.Flags().Uint64("total", 0, "Number of items (overrides config)")
	progressCmd.Flags().Int("workers", 0, "Number of worker goroutines (overrides config)")
}
