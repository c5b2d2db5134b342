package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// newClassifyCmd creates the classify subcommand.
func newClassifyCmd() *cobra.Command {
	var threshold float64

	cmd := &cobra.Command{
		Use:   "classify [query]",
		Short: "Classify a query and show the predicted intent",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			cls, err := newClassifier()
			if err != nil {
				return err
			}

			t := threshold
			if !cmd.Flags().Changed("threshold") {
				t = cfg.Classifier.ConfidenceThreshold
			}

			intent, confidence := cls.Classify(query, t)

			if outputJSON {
				return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
					"query":      query,
					"intent":     intent,
					"confidence": confidence,
					"threshold":  t,
				})
			}

			if intent == "" {
				Warning("No intent above threshold %.2f (best score %.3f)", t, confidence)
				return nil
			}

			color.New(color.FgGreen, color.Bold).Printf("%s ", intent)
			fmt.Printf("(confidence %.3f, threshold %.2f)\n", confidence, t)
			return nil
		},
	}

	cmd.Flags().Float64Var(&threshold, "threshold", 0.3, "confidence threshold")

	return cmd
}
