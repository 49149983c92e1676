package main

import (
	"fmt"
	"os"

	"github.com/aretw0/statusline/internal/cli"
	"github.com/aretw0/statusline/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "statusline",
	Short: "statusline draws a live status line in the terminal and erases it when done",
	Long: `statusline demonstrates a status line: text redrawn in place at a fixed rate
while the data behind it changes as fast as it likes, and erased on exit.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Config file (YAML or JSON)")
	rootCmd.PersistentFlags().Duration("interval", 0, "Redraw interval (overrides config, e.g. 50ms)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width for wrap accounting (0 = detect)")
	rootCmd.PersistentFlags().String("metrics-addr", "", "Serve /metrics and /status on this address")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}

// runOptions reads the persistent flags shared by every demo.
func runOptions(cmd *cobra.Command) cli.RunOptions {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	interval, _ := flags.GetDuration("interval")
	width, _ := flags.GetInt("width")
	metricsAddr, _ := flags.GetString("metrics-addr")
	debug, _ := flags.GetBool("debug")

	return cli.RunOptions{
		ConfigPath:  configPath,
		Interval:    interval,
		Width:       width,
		MetricsAddr: metricsAddr,
		Debug:       debug,
	}
}
