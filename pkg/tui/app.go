package tui

import (
	"fmt"
	"os"

	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/config"
	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/exporter"
	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/finals"
	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/matcher"
	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/pdftext"
	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/schedule"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

var (
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
	foundStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	missStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// RunGenerateTUI walks through the whole pipeline interactively: ask for the
// PDF, pick a matching policy, fetch and match, then offer a CSV export.
func RunGenerateTUI() error {
	fmt.Println(accentStyle.Render("UNR Finals Schedule Generator"))

	cfg, _ := config.Load()

	var pdfPath string
	policyName := cfg.DefaultPolicy
	if policyName == "" {
		policyName = "tolerant"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Path to your MyNEVADA schedule PDF").
				Placeholder("schedule.pdf").
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("a PDF path is required")
					}
					if _, err := os.Stat(s); err != nil {
						return fmt.Errorf("can't read %s", s)
					}
					return nil
				}).
				Value(&pdfPath),
			huh.NewSelect[string]().
				Title("Matching policy").
				Description("Tolerant forgives the page's sloppier time strings; exact doesn't.").
				Options(
					huh.NewOption("Tolerant (recommended)", "tolerant"),
					huh.NewOption("Exact", "exact"),
				).
				Value(&policyName),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	policy, err := matcher.ParsePolicy(policyName)
	if err != nil {
		return err
	}

	text, err := pdftext.ExtractText(pdfPath)
	if err != nil {
		return err
	}

	vocab := schedule.DefaultVocabulary()
	courses := schedule.Courses(schedule.ParseCourses(text, vocab))
	if len(courses) == 0 {
		return fmt.Errorf("no enrolled courses found in %s", pdfPath)
	}

	url := cfg.FinalsURL
	if url == "" {
		url = finals.DefaultURL
	}

	client := finals.NewClient()
	var tables []finals.DayTable
	_ = spinner.New().
		Title("Fetching the finals schedule page...").
		Action(func() {
			tables, err = client.FetchTables(url, vocab)
		}).
		Run()
	if err != nil {
		return err
	}

	results := matcher.MatchAll(courses, tables, policy)

	fmt.Println()
	for _, res := range results {
		if res.FinalDay == matcher.NotFound {
			fmt.Printf("  %-40s %s\n", res.Course, missStyle.Render("no matching final found"))
			continue
		}
		fmt.Printf("  %-40s %s\n", res.Course, foundStyle.Render(fmt.Sprintf("%s, %s", res.FinalDay, res.FinalTime)))
	}
	fmt.Println()

	saveCSV := true
	confirm := huh.NewConfirm().
		Title("Save results to finals_schedule.csv?").
		Value(&saveCSV)
	if err := confirm.Run(); err != nil {
		return err
	}
	if !saveCSV {
		return nil
	}

	output := cfg.DefaultOutput
	if output == "" {
		output = "finals_schedule.csv"
	}

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := exporter.WriteCSV(results, file); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("Saved to %s", output)))
	return nil
}
