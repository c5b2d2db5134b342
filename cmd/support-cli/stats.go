package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// newStatsCmd creates the stats subcommand.
func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show classifier training statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cls, err := newClassifier()
			if err != nil {
				return err
			}

			stats := cls.Stats()

			if outputJSON {
				return json.NewEncoder(os.Stdout).Encode(stats)
			}

			color.New(color.FgGreen, color.Bold).Println("Classifier Training Statistics")
			fmt.Printf("  Training examples: %d\n", stats.TotalExamples)
			fmt.Printf("  Unique intents:    %d\n", stats.UniqueIntents)
			fmt.Printf("  Vocabulary size:   %d\n", stats.VocabularySize)
			fmt.Println("  Examples per intent:")

			intents := make([]string, 0, len(stats.IntentDistribution))
			for intent := range stats.IntentDistribution {
				intents = append(intents, intent)
			}
			sort.Strings(intents)

			for _, intent := range intents {
				fmt.Printf("    %-14s %d\n", intent, stats.IntentDistribution[intent])
			}

			return nil
		},
	}

	return cmd
}
