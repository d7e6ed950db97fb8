package cmd

import (
	"fmt"
	"strings"

	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var finalsCmd = &cobra.Command{
	Use:   "finals",
	Short: "Show the published finals timetable",
	Long:  `Fetch the finals-schedule page and print its tables, one per exam day.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()

		tables, err := fetchTables(cmd, cfg)
		if err != nil {
			return err
		}

		dayStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true).Padding(1, 0)
		patternStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
		titleCaser := cases.Title(language.English)

		for _, table := range tables {
			fmt.Println(dayStyle.Render(titleCaser.String(strings.ToLower(table.Day))))
			for _, slot := range table.Slots {
				fmt.Printf("  %-14s %-8s final: %s\n", slot.ClassTime, patternStyle.Render(slot.DayPattern), slot.FinalTime)
			}
		}
		fmt.Println()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(finalsCmd)

	finalsCmd.Flags().String("url", "", "Finals schedule page URL override")
	finalsCmd.Flags().Bool("no-cache", false, "Skip the cached copy of the finals page")
}
