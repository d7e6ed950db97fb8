package cmd

import (
	"fmt"

	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/pdftext"
	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/schedule"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the enrolled courses extracted from a schedule PDF",
	Long: `Run only the course extraction step and print what was found.
With --verbose, skipped sections are printed along with why each one was
skipped (audited, not enrolled, no course header).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pdfPath, _ := cmd.Flags().GetString("pdf")
		verbose, _ := cmd.Flags().GetBool("verbose")

		text, err := pdftext.ExtractText(pdfPath)
		if err != nil {
			return err
		}

		outcomes := schedule.ParseCourses(text, schedule.DefaultVocabulary())

		titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true).Padding(1, 0)
		dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

		fmt.Println(titleStyle.Render("Extracted courses"))
		found := 0
		for _, o := range outcomes {
			if o.Course == nil {
				continue
			}
			found++
			fmt.Printf("  %-40s Days: %-6s Start: %s\n", o.Course.Name, o.Course.Days, o.Course.StartTime)
		}
		if found == 0 {
			fmt.Println("  (none)")
		}

		if verbose {
			fmt.Println(titleStyle.Render("Skipped sections"))
			for _, o := range outcomes {
				if o.Course != nil {
					continue
				}
				fmt.Printf("  %-22s %s\n", o.Skipped, dimStyle.Render(o.Snippet))
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(coursesCmd)

	coursesCmd.Flags().StringP("pdf", "p", "", "Path to the MyNEVADA class schedule PDF")
	coursesCmd.Flags().BoolP("verbose", "v", false, "Also show skipped sections and their skip reasons")
	coursesCmd.MarkFlagRequired("pdf")
}
