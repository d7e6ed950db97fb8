package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/config"
	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/exporter"
	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/matcher"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your matched finals to an ICS calendar file",
	Long: `Match your courses against the finals timetable and write the found
finals as calendar events. The timetable names only weekdays, so --week-start
must give the date of the Monday of finals week to anchor the events.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pdfPath, _ := cmd.Flags().GetString("pdf")
		output, _ := cmd.Flags().GetString("output")
		weekStartStr, _ := cmd.Flags().GetString("week-start")

		weekStart, err := time.ParseInLocation("2006-01-02", weekStartStr, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --week-start %q (want YYYY-MM-DD): %w", weekStartStr, err)
		}

		cfg, _ := config.Load()

		policy, err := resolvePolicy(cmd, cfg)
		if err != nil {
			return err
		}

		courses, err := extractCourses(pdfPath)
		if err != nil {
			return err
		}

		tables, err := fetchTables(cmd, cfg)
		if err != nil {
			return err
		}

		results := matcher.MatchAll(courses, tables, policy)

		found := 0
		for _, res := range results {
			if res.FinalDay != matcher.NotFound {
				found++
			}
		}
		if found == 0 {
			return fmt.Errorf("no finals matched; nothing to export")
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(results, weekStart, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported %d finals to %s\n", found, output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("pdf", "p", "", "Path to the MyNEVADA class schedule PDF")
	exportCmd.Flags().StringP("output", "o", "finals.ics", "Output ICS path")
	exportCmd.Flags().String("week-start", "", "Monday of finals week (YYYY-MM-DD)")
	exportCmd.Flags().String("policy", "", "Matching policy: exact or tolerant (default tolerant)")
	exportCmd.Flags().String("url", "", "Finals schedule page URL override")
	exportCmd.Flags().Bool("no-cache", false, "Skip the cached copy of the finals page")
	exportCmd.MarkFlagRequired("pdf")
	exportCmd.MarkFlagRequired("week-start")
}
