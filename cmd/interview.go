package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizmate/internal/interview"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run mock interviews and review their results",
}

var interviewTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the available interview formats",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%-22s  %-9s  %-9s  %s\n", "Type", "Length", "Questions", "Description")
		fmt.Println(strings.Repeat("─", 84))
		for _, t := range interview.Types() {
			fmt.Printf("%-22s  %-9s  %-9d  %s\n", t.ID, t.Duration, t.Questions(), t.Description)
		}
		return nil
	},
}

var interviewStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a mock interview session",
	RunE: func(cmd *cobra.Command, args []string) error {
		typeID, _ := cmd.Flags().GetString("type")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		session, err := d.interviews.Start(typeID)
		if err != nil {
			return err
		}

		typ, _ := interview.TypeByID(session.TypeID)
		fmt.Printf("%s — %d questions, %s.\n", typ.Name, d.interviews.Progress().TotalQuestions, typ.Duration)
		fmt.Println("Answer with 1-4. Enter q to end the session early.")
		fmt.Println()

		reader := bufio.NewReader(cmd.InOrStdin())
		for {
			q := d.interviews.Current()
			if q == nil {
				break
			}

			p := d.interviews.Progress()
			fmt.Printf("[%d/%d · %s · %s left]\n", p.CurrentQuestion, p.TotalQuestions, p.Phase, p.TimeRemaining.Round(time.Second))
			fmt.Println(q.Question.Question)
			for i, opt := range q.Options {
				fmt.Printf("  %d. %s\n", i+1, opt)
			}

			asked := time.Now()
			answer, stop := readAnswer(reader, len(q.Options))
			if stop {
				break
			}

			a, err := d.interviews.Submit(answer, time.Since(asked))
			if err != nil {
				return err
			}
			if a.IsCorrect {
				fmt.Println("Correct.")
			} else {
				fmt.Printf("Incorrect. The answer was %d: %s\n", q.Correct+1, q.Options[q.Correct])
			}
			fmt.Println()
		}

		rec, err := d.interviews.Complete(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println("Session complete")
		fmt.Println(strings.Repeat("─", 52))
		fmt.Printf("Score:       %d/100\n", rec.Score)
		fmt.Printf("Accuracy:    %d%% (%d of %d)\n", rec.AccuracyScore, rec.CorrectAnswers, rec.QuestionsAnswered)
		fmt.Printf("Pace:        %d/100\n", rec.TimeScore)
		fmt.Printf("Completion:  %d%%\n", rec.CompletionScore)
		fmt.Println()
		fmt.Println("Run `quizmate assess` to see how this feeds your readiness estimate.")
		return nil
	},
}

// readAnswer reads one line and parses a 1-based option number. q (or
// end of input) ends the session.
func readAnswer(reader *bufio.Reader, options int) (answer int, stop bool) {
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, true
		}
		line = strings.TrimSpace(line)
		if line == "q" || line == "quit" {
			return 0, true
		}
		n, convErr := strconv.Atoi(line)
		if convErr != nil || n < 1 || n > options {
			fmt.Printf("Enter a number from 1 to %d, or q to stop.\n", options)
			continue
		}
		return n - 1, false
	}
}

var interviewHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent interview results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		history := d.interviews.History(limit)
		if len(history) == 0 {
			fmt.Println("No interviews yet. Run `quizmate interview start` to take one.")
			return nil
		}

		fmt.Printf("%-19s  %-22s  %5s  %8s  %10s\n", "Completed", "Type", "Score", "Accuracy", "Answered")
		fmt.Println(strings.Repeat("─", 72))
		for _, rec := range history {
			fmt.Printf("%-19s  %-22s  %5d  %7d%%  %10d\n",
				rec.CompletedAt.Local().Format("2006-01-02 15:04"),
				rec.TypeID,
				rec.Score,
				rec.AccuracyScore,
				rec.QuestionsAnswered,
			)
		}
		return nil
	},
}

var interviewStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated interview statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		stats := d.interviews.Stats()
		if stats.TotalInterviews == 0 {
			fmt.Println("No interviews yet. Run `quizmate interview start` to take one.")
			return nil
		}

		fmt.Printf("Interviews taken:  %d\n", stats.TotalInterviews)
		fmt.Printf("Average score:     %.1f\n", stats.AverageScore)
		fmt.Printf("Best score:        %d\n", stats.BestScore)
		fmt.Printf("Total time:        %s\n", (time.Duration(stats.TotalTimeMs) * time.Millisecond).Round(time.Second))
		return nil
	},
}

func init() {
	interviewStartCmd.Flags().String("type", "quick-practice", "Interview format (see `quizmate interview types`)")
	interviewHistoryCmd.Flags().IntP("limit", "n", 10, "Number of results to show")

	interviewCmd.AddCommand(interviewTypesCmd)
	interviewCmd.AddCommand(interviewStartCmd)
	interviewCmd.AddCommand(interviewHistoryCmd)
	interviewCmd.AddCommand(interviewStatsCmd)
}
