package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizmate/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase answer history and analysis data",
	Long: "Erases the answer ledger, weakness analysis, skill assessments, and interview history.\n" +
		"Settings and the question cache are kept unless flags say otherwise.",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This erases your answer history. Re-run with --yes to confirm.")
			return nil
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		stateRepo := d.store.StateRepo()

		if err := d.ledger.Reset(ctx); err != nil {
			return fmt.Errorf("reset ledger: %w", err)
		}
		if err := stateRepo.Delete(ctx, store.StateKeyWeakness); err != nil {
			return fmt.Errorf("reset weakness analysis: %w", err)
		}
		if err := stateRepo.Delete(ctx, store.StateKeyAssessments); err != nil {
			return fmt.Errorf("reset assessments: %w", err)
		}
		if err := stateRepo.Delete(ctx, store.StateKeyInterviews); err != nil {
			return fmt.Errorf("reset interview history: %w", err)
		}
		fmt.Println("Answer history and analysis data erased.")

		if clearCache, _ := cmd.Flags().GetBool("cache"); clearCache {
			if err := d.cache.Clear(ctx); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			fmt.Println("Question cache cleared.")
		}
		if clearSettings, _ := cmd.Flags().GetBool("settings"); clearSettings {
			if err := d.settings.Reset(ctx); err != nil {
				return fmt.Errorf("reset settings: %w", err)
			}
			fmt.Println("Settings restored to defaults.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
	resetCmd.Flags().Bool("cache", false, "Also clear the question cache")
	resetCmd.Flags().Bool("settings", false, "Also restore default settings")
}
