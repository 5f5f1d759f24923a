package main

import (
	"context"
	"os"

	"github.com/aretw0/waymark/internal/cli"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <scenario.yaml>",
	Short: "Replay a scenario file headlessly",
	Long: `Applies the steps of a scenario file to a fresh session, then prints the
final grid and route report. Exits with an error when the scenario's
expectations are not met.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		metrics, _ := cmd.Flags().GetBool("metrics")
		watch, _ := cmd.Flags().GetBool("watch")

		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		return cli.Play(sigCtx, cli.PlayOptions{
			GlobalOptions: globalOptions(cmd),
			Path:          args[0],
			Metrics:       metrics,
			Watch:         watch,
		}, os.Stdout, os.Stderr)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().Bool("metrics", false, "Print Prometheus metrics to stderr after the replay")
	playCmd.Flags().BoolP("watch", "w", false, "Replay again whenever the scenario file changes")
}
