package main

import (
	"fmt"
	"os"

	"github.com/aretw0/waymark/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "waymark",
	Short: "Waymark is a grid editor and route planner",
	Long: `Waymark lets you place waypoints, obstacles, inaccessible and risky cells
on a grid and computes the cheapest route between consecutive waypoints.`,
	SilenceUsage:  true,
	SilenceErrors: true,
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
	rootCmd.PersistentFlags().String("config", "", "Config file (default ./waymark.yaml when present)")
	rootCmd.PersistentFlags().Int("width", 0, "Grid width (overrides the config file)")
	rootCmd.PersistentFlags().Int("height", 0, "Grid height (overrides the config file)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log debug output to stderr")
}

func globalOptions(cmd *cobra.Command) cli.GlobalOptions {
	configPath, _ := cmd.Flags().GetString("config")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.GlobalOptions{
		ConfigPath: configPath,
		Width:      width,
		Height:     height,
		Debug:      debug,
	}
}
