package main

import (
	"fmt"
	"os"

	"golang-trading-insights/pkg/common"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:     "insights-service",
		Short:   "Trading insights client for the ticker, news and bot telemetry backends",
		Version: common.BuildVariant,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-insights.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd, settingsCmd(), tickersCmd(), botCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing insights-service CLI: %s\n", err)
		os.Exit(1)
	}
}
