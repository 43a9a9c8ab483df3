package cmd

import (
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Ask one question right now",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		p := d.prefs()
		if topic, _ := cmd.Flags().GetString("topic"); topic != "" {
			p.Topics = []string{topic}
		}
		if level, _ := cmd.Flags().GetString("level"); level != "" {
			p.Levels = []string{level}
		}
		return d.askOnce(cmd.Context(), p)
	},
}

func init() {
	askCmd.Flags().String("topic", "", "Ask about this topic instead of the preferred ones")
	askCmd.Flags().String("level", "", "Difficulty (beginner, intermediate, advanced)")
}
