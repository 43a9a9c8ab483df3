package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizmate/internal/weakness"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze weaknesses and show a learning path",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		aggr := d.ledger.Aggregates()
		if aggr.TotalQuestions == 0 {
			fmt.Println("Not enough data yet. Answer a few questions first.")
			return nil
		}

		report := d.analyzer.Analyze(cmd.Context(), aggr, d.ledger.WeeklyStats())

		fmt.Printf("Confidence: %.0f%% overall, trend %s\n",
			report.ConfidenceScores.Overall, report.ConfidenceScores.Trend)

		if len(report.OverallWeaknesses) > 0 {
			fmt.Println()
			fmt.Println("Weak areas")
			fmt.Println(strings.Repeat("─", 60))
			for _, w := range report.OverallWeaknesses {
				fmt.Printf("[%-8s]  %-20s  %s\n", w.Severity, w.Name, w.Description)
			}
		} else {
			fmt.Println("\nNo significant weaknesses detected. Keep going!")
		}

		if len(report.MasteryLevels) > 0 {
			fmt.Println()
			fmt.Println("Mastery")
			fmt.Println(strings.Repeat("─", 60))
			fmt.Printf("%-20s  %-14s  %8s  %s\n", "Concept", "Level", "Score", "Confidence")
			for _, concept := range sortedMasteryKeys(report.MasteryLevels) {
				m := report.MasteryLevels[concept]
				fmt.Printf("%-20s  %-14s  %7.0f%%  %s\n", concept, m.Level, m.Score, m.Confidence)
			}
		}

		if len(report.RecommendedActions) > 0 {
			fmt.Println()
			fmt.Println("Recommended next steps")
			fmt.Println(strings.Repeat("─", 60))
			for i, a := range report.RecommendedActions {
				if i >= 5 {
					break
				}
				fmt.Printf("%d. %s (%s)\n", i+1, a.Action, a.EstimatedTime)
				if a.Reason != "" {
					fmt.Printf("   %s\n", a.Reason)
				}
			}
		}

		if len(report.LearningPath) > 0 {
			fmt.Println()
			fmt.Println("Learning path")
			fmt.Println(strings.Repeat("─", 60))
			for i, item := range report.LearningPath {
				fmt.Printf("%d. %s — %s (%s, %s)\n", i+1, item.Title, item.Description, item.Difficulty, item.EstimatedTime)
			}
		}

		return nil
	},
}

func sortedMasteryKeys(m map[string]weakness.Mastery) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
