package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run a full skill assessment",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		aggr := d.ledger.Aggregates()
		if aggr.TotalQuestions == 0 {
			fmt.Println("Not enough data yet. Answer a few questions first.")
			return nil
		}

		report := d.analyzer.Analyze(ctx, aggr, d.ledger.WeeklyStats())
		a := d.assessor.Assess(ctx, aggr, report, d.interviews.Scores())

		fmt.Printf("Overall score:     %d/100\n", a.OverallScore)
		fmt.Printf("Experience level:  %s (%s confidence)\n", a.ExperienceLevel.Name, a.ExperienceLevel.Confidence)
		fmt.Printf("Data quality:      %s\n", a.DataQuality)

		fmt.Println()
		fmt.Println("Category scores")
		fmt.Println(strings.Repeat("─", 52))
		categories := make([]string, 0, len(a.CategoryScores))
		for name := range a.CategoryScores {
			categories = append(categories, name)
		}
		sort.Strings(categories)
		for _, name := range categories {
			cs := a.CategoryScores[name]
			fmt.Printf("%-24s  %5.1f  (%s)\n", name, cs.Score, cs.Confidence)
		}

		if len(a.Strengths) > 0 {
			fmt.Println()
			fmt.Println("Strengths")
			fmt.Println(strings.Repeat("─", 52))
			for _, s := range a.Strengths {
				fmt.Printf("%-24s  %5.1f  %s\n", s.Name, s.Score, s.Description)
			}
		}

		if len(a.Weaknesses) > 0 {
			fmt.Println()
			fmt.Println("Needs work")
			fmt.Println(strings.Repeat("─", 52))
			for _, w := range a.Weaknesses {
				fmt.Printf("%-24s  %5.1f  [%s]\n", w.Name, w.Score, w.Severity)
			}
		}

		if len(a.Certifications) > 0 {
			fmt.Println()
			fmt.Println("Certifications")
			fmt.Println(strings.Repeat("─", 52))
			for _, c := range a.Certifications {
				fmt.Printf("%s  %s — %s\n", c.Badge, c.Name, c.Description)
			}
		}

		fmt.Println()
		fmt.Printf("Interview readiness: %.0f%% (est. success rate %d%%)\n",
			a.InterviewReadiness.Overall, a.InterviewReadiness.EstimatedSuccessRate)
		for _, rec := range a.InterviewReadiness.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}

		if len(a.Recommendations) > 0 {
			fmt.Println()
			fmt.Println("Recommendations")
			fmt.Println(strings.Repeat("─", 52))
			for _, r := range a.Recommendations {
				fmt.Printf("[%-6s]  %s — %s (%s)\n", r.Priority, r.Title, r.Description, r.EstimatedTime)
			}
		}

		return nil
	},
}
