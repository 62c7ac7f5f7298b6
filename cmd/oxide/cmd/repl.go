package cmd

import (
	"github.com/spf13/cobra"

	"oxide/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive parse loop",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return repl.Start(cmd.InOrStdin(), cmd.OutOrStdout(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
