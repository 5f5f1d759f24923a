package main

import (
	"context"
	"os"

	"github.com/aretw0/waymark/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <scenario.yaml>",
	Short: "Export the routes of a scenario as a Mermaid diagram",
	Long:  `Replays a scenario and outputs a Mermaid flowchart of the computed routes.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		detailed, _ := cmd.Flags().GetBool("detailed")
		direction, _ := cmd.Flags().GetString("direction")

		return cli.Graph(context.Background(), cli.GraphOptions{
			GlobalOptions: globalOptions(cmd),
			Path:          args[0],
			Detailed:      detailed,
			Direction:     direction,
		}, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().Bool("detailed", false, "Draw every cell of each route")
	graphCmd.Flags().String("direction", "LR", "Flowchart direction (LR, TD, ...)")
}
