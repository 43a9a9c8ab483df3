package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show answer history and learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		aggr := d.ledger.Aggregates()
		if aggr.TotalQuestions == 0 {
			fmt.Println("No questions answered yet. Run `quizmate ask` to get started.")
			return nil
		}

		if weekOnly, _ := cmd.Flags().GetBool("week"); weekOnly {
			printWeekly(d)
			return nil
		}

		fmt.Println("Overall")
		fmt.Println(strings.Repeat("─", 52))
		fmt.Printf("Questions answered:  %d\n", aggr.TotalQuestions)
		fmt.Printf("Correct:             %d (%d%%)\n", aggr.CorrectAnswers, aggr.OverallAccuracy)
		fmt.Printf("Current streak:      %d (best %d)\n", aggr.Streak.Current, aggr.Streak.Longest)
		if aggr.AverageResponseTimeMs > 0 {
			fmt.Printf("Avg response time:   %.1fs\n", float64(aggr.AverageResponseTimeMs)/1000)
		}

		trend := d.ledger.RecentTrend()
		fmt.Printf("Recent trend:        %s (%d%% over the last attempts)\n", trend.Trend, trend.Accuracy)

		if weekly := d.ledger.WeeklyStats(); weekly.TotalQuestions > 0 {
			fmt.Println()
			printWeekly(d)
		}

		topics := d.ledger.TopicPerformances()
		if len(topics) > 0 {
			fmt.Println()
			fmt.Println("By topic")
			fmt.Println(strings.Repeat("─", 52))
			fmt.Printf("%-20s  %7s  %8s  %s\n", "Topic", "Total", "Accuracy", "Strength")
			for _, tp := range topics {
				fmt.Printf("%-20s  %7d  %7d%%  %s\n", tp.Topic, tp.Total, tp.Accuracy, tp.Strength)
			}
		}

		achievements := d.ledger.Achievements()
		if len(achievements) > 0 {
			fmt.Println()
			fmt.Println("Achievements")
			fmt.Println(strings.Repeat("─", 52))
			for _, a := range achievements {
				fmt.Printf("%-24s  %s  (%s)\n", a.Name, a.Description, a.EarnedAt.Local().Format("2006-01-02"))
			}
		}

		return nil
	},
}

func printWeekly(d *deps) {
	weekly := d.ledger.WeeklyStats()
	fmt.Println("Last 7 days")
	fmt.Println(strings.Repeat("─", 52))
	fmt.Printf("%-12s  %-10s  %9s  %8s\n", "Date", "Day", "Questions", "Accuracy")
	for _, day := range weekly.Days {
		if day.Questions == 0 {
			continue
		}
		fmt.Printf("%-12s  %-10s  %9d  %7d%%\n", day.Date, day.Weekday, day.Questions, day.Accuracy)
	}
	fmt.Printf("%-12s  %-10s  %9d  %7d%%\n", "TOTAL", "", weekly.TotalQuestions, weekly.Accuracy)
}

func init() {
	statsCmd.Flags().Bool("week", false, "Show only the last 7 days")
}
