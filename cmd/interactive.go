package cmd

import (
	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Run the generator interactively",
	Long:  `Walk through PDF selection, policy choice, and export with prompts instead of flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunGenerateTUI()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
