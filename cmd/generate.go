package cmd

import (
	"fmt"
	"os"

	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/config"
	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/exporter"
	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/finals"
	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/matcher"
	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/pdftext"
	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/schedule"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate your finals schedule from a MyNEVADA PDF",
	Long: `Extract your enrolled courses from the schedule PDF, fetch the finals
timetable, match them up, and write the result to a CSV file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pdfPath, _ := cmd.Flags().GetString("pdf")
		output, _ := cmd.Flags().GetString("output")

		cfg, _ := config.Load()
		if output == "" {
			output = cfg.DefaultOutput
		}
		if output == "" {
			output = "finals_schedule.csv"
		}

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
		printResults(results, policy)

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.WriteCSV(results, file); err != nil {
			return err
		}

		fmt.Printf("Finals schedule for %d courses saved to %s\n", len(results), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("pdf", "p", "", "Path to the MyNEVADA class schedule PDF")
	generateCmd.Flags().StringP("output", "o", "", "Output CSV path (default finals_schedule.csv)")
	generateCmd.Flags().String("policy", "", "Matching policy: exact or tolerant (default tolerant)")
	generateCmd.Flags().String("url", "", "Finals schedule page URL override")
	generateCmd.Flags().Bool("no-cache", false, "Skip the cached copy of the finals page")
	generateCmd.MarkFlagRequired("pdf")
}

// extractCourses runs the PDF text extraction and course parsing, erroring
// out when nothing enrolled was found.
func extractCourses(pdfPath string) ([]schedule.Course, error) {
	text, err := pdftext.ExtractText(pdfPath)
	if err != nil {
		return nil, err
	}

	outcomes := schedule.ParseCourses(text, schedule.DefaultVocabulary())
	courses := schedule.Courses(outcomes)
	if len(courses) == 0 {
		return nil, fmt.Errorf("no enrolled courses found in %s", pdfPath)
	}
	return courses, nil
}

// fetchTables downloads and parses the finals tables behind a spinner.
func fetchTables(cmd *cobra.Command, cfg *config.AppConfig) ([]finals.DayTable, error) {
	url, _ := cmd.Flags().GetString("url")
	if url == "" {
		url = cfg.FinalsURL
	}
	if url == "" {
		url = finals.DefaultURL
	}
	noCache, _ := cmd.Flags().GetBool("no-cache")

	client := finals.NewClient()
	client.SkipCache = noCache

	var tables []finals.DayTable
	var err error
	_ = spinner.New().
		Title("Fetching the finals schedule page...").
		Action(func() {
			tables, err = client.FetchTables(url, schedule.DefaultVocabulary())
		}).
		Run()

	if err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("no finals tables found at %s", url)
	}
	return tables, nil
}

func resolvePolicy(cmd *cobra.Command, cfg *config.AppConfig) (matcher.Policy, error) {
	name, _ := cmd.Flags().GetString("policy")
	if name == "" {
		name = cfg.DefaultPolicy
	}
	return matcher.ParsePolicy(name)
}

func printResults(results []matcher.Result, policy matcher.Policy) {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true).Padding(1, 0)
	foundStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	missStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	fmt.Println(titleStyle.Render(fmt.Sprintf("Finals Schedule (%s matching)", policy.Name())))

	for _, res := range results {
		if res.FinalDay == matcher.NotFound {
			fmt.Printf("  %-40s %s\n", res.Course, missStyle.Render("no matching final found"))
			continue
		}
		fmt.Printf("  %-40s %s\n", res.Course, foundStyle.Render(fmt.Sprintf("%s, %s", res.FinalDay, res.FinalTime)))
	}
	fmt.Println()
}
