package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "finalsgen",
	Short: "Work out your UNR final exam times from your class schedule PDF",
	Long: `finalsgen reads the PDF export of your MyNEVADA class schedule,
scrapes the University of Nevada, Reno finals-schedule page, and matches
each enrolled course to its final exam day and time.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
