package main

import (
	"github.com/aretw0/waymark/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Edit a grid interactively",
	Long: `Starts an editing session. On a terminal this opens the grid editor;
otherwise commands are read line by line from stdin (see 'help' in the session).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		headless, _ := cmd.Flags().GetBool("headless")
		jsonMode, _ := cmd.Flags().GetBool("json")
		plain, _ := cmd.Flags().GetBool("plain")

		return cli.Execute(cli.RunOptions{
			GlobalOptions: globalOptions(cmd),
			Headless:      headless,
			JSON:          jsonMode,
			Plain:         plain,
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("headless", false, "Run in headless mode (no banner, no prompt, no initial board)")
	runCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	runCmd.Flags().Bool("plain", false, "Use the line-oriented command loop even on a terminal")

	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
