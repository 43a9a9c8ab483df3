package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizmate/internal/quiz"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the cache of generated questions",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache contents by topic, level, and source",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		stats := d.cache.Stats()
		if stats.Total == 0 {
			fmt.Println("The question cache is empty.")
			return nil
		}

		fmt.Printf("Cached questions: %d\n", stats.Total)
		printCounts("By topic", stats.ByTopic)
		printCounts("By level", stats.ByLevel)
		printCounts("By source", stats.BySource)
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		n := d.cache.Len()
		if err := d.cache.Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clear cache: %w", err)
		}
		fmt.Printf("Removed %d cached questions.\n", n)
		return nil
	},
}

var cacheExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export cached questions as JSON (stdout by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		data, err := json.MarshalIndent(d.cache.Export(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal cache: %w", err)
		}

		if len(args) == 0 {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(args[0], data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", args[0], err)
		}
		fmt.Printf("Exported %d questions to %s.\n", d.cache.Len(), args[0])
		return nil
	},
}

var cacheImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import questions from a JSON export",
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
		var questions []quiz.Question
		if err := json.Unmarshal(data, &questions); err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		added, err := d.cache.Import(cmd.Context(), questions)
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}
		fmt.Printf("Imported %d of %d questions (duplicates and invalid entries skipped).\n", added, len(questions))
		return nil
	},
}

var cacheDedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Remove duplicate questions from the cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		removed, err := d.cache.RemoveDuplicates(cmd.Context())
		if err != nil {
			return fmt.Errorf("dedupe: %w", err)
		}
		fmt.Printf("Removed %d duplicates.\n", removed)
		return nil
	},
}

func printCounts(title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(title)
	fmt.Println(strings.Repeat("─", 36))
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%-24s  %d\n", k, counts[k])
	}
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheExportCmd)
	cacheCmd.AddCommand(cacheImportCmd)
	cacheCmd.AddCommand(cacheDedupeCmd)
}
