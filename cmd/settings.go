package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizmate/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showSettings(cmd)
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		flags := cmd.Flags()
		err = d.settings.Update(cmd.Context(), func(s *settings.Settings) {
			if flags.Changed("topics") {
				topics, _ := flags.GetStringSlice("topics")
				s.Question.PreferredTopics = topics
			}
			if flags.Changed("levels") {
				levels, _ := flags.GetStringSlice("levels")
				s.Question.PreferredLevels = levels
			}
			if flags.Changed("ai") {
				useAI, _ := flags.GetBool("ai")
				s.Question.UseAI = useAI
			}
			if flags.Changed("provider") {
				provider, _ := flags.GetString("provider")
				s.AIProvider = provider
			}
			if flags.Changed("openai-key") {
				key, _ := flags.GetString("openai-key")
				s.OpenAIAPIKey = key
			}
			if flags.Changed("gemini-key") {
				key, _ := flags.GetString("gemini-key")
				s.GeminiAPIKey = key
			}
			if flags.Changed("prompt") {
				prompt, _ := flags.GetString("prompt")
				s.CustomPrompt = prompt
			}
			if flags.Changed("min-interval") {
				min, _ := flags.GetDuration("min-interval")
				s.Timing.MinIntervalMs = min.Milliseconds()
			}
			if flags.Changed("max-interval") {
				max, _ := flags.GetDuration("max-interval")
				s.Timing.MaxIntervalMs = max.Milliseconds()
			}
		})
		if err != nil {
			return err
		}
		fmt.Println("Settings saved.")
		return nil
	},
}

var settingsExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export settings as JSON without API keys",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		data, err := d.settings.Export()
		if err != nil {
			return fmt.Errorf("export settings: %w", err)
		}
		if len(args) == 0 {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(args[0], data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", args[0], err)
		}
		fmt.Printf("Settings exported to %s.\n", args[0])
		return nil
	},
}

var settingsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import settings from a JSON export (API keys are never imported)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		if err := d.settings.Import(cmd.Context(), data); err != nil {
			return err
		}
		fmt.Println("Settings imported.")
		return nil
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.settings.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Settings restored to defaults.")
		return nil
	},
}

func showSettings(cmd *cobra.Command) error {
	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	s := d.settings.Get()

	fmt.Printf("Topics:        %s\n", strings.Join(s.Question.PreferredTopics, ", "))
	fmt.Printf("Levels:        %s\n", strings.Join(s.Question.PreferredLevels, ", "))
	fmt.Printf("AI questions:  %v\n", s.Question.UseAI)
	fmt.Printf("AI provider:   %s\n", s.AIProvider)
	fmt.Printf("OpenAI key:    %s\n", maskKey(s.OpenAIAPIKey))
	fmt.Printf("Gemini key:    %s\n", maskKey(s.GeminiAPIKey))
	fmt.Printf("Interval:      %s to %s\n", s.Timing.MinInterval(), s.Timing.MaxInterval())
	if s.CustomPrompt != "" {
		fmt.Printf("Custom prompt: %q\n", s.CustomPrompt)
	}
	return nil
}

func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

func init() {
	flags := settingsSetCmd.Flags()
	flags.StringSlice("topics", nil, "Preferred topics, comma separated")
	flags.StringSlice("levels", nil, "Preferred levels (beginner, intermediate, advanced)")
	flags.Bool("ai", false, "Enable AI question generation")
	flags.String("provider", "", "AI provider (openai, gemini, anthropic, openrouter)")
	flags.String("openai-key", "", "OpenAI API key")
	flags.String("gemini-key", "", "Gemini API key")
	flags.String("prompt", "", "Custom generation prompt ({topic} and {level} are substituted)")
	flags.Duration("min-interval", 2*time.Minute, "Minimum delay between questions")
	flags.Duration("max-interval", 10*time.Minute, "Maximum delay between questions")

	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsExportCmd)
	settingsCmd.AddCommand(settingsImportCmd)
	settingsCmd.AddCommand(settingsResetCmd)
}
