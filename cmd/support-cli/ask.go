package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// newAskCmd creates the ask subcommand.
func newAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a single support question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")

			res, err := newResolver()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), cfg.LLM.Timeout+5*time.Second)
			defer cancel()

			var spin *Spinner
			if !outputJSON {
				spin = NewSpinner("Thinking...")
				spin.Start()
			}

			result := res.Resolve(ctx, question)

			if spin != nil {
				spin.Stop()
			}

			if outputJSON {
				return json.NewEncoder(os.Stdout).Encode(result)
			}

			color.New(color.FgCyan, color.Bold).Printf("You: ")
			fmt.Println(question)
			color.New(color.FgGreen, color.Bold).Printf("Bot: ")
			fmt.Println(result.Reply)

			if verbose {
				fmt.Println()
				Info("source=%s intent=%s confidence=%.3f", result.Source, result.Intent, result.Confidence)
			}

			return nil
		},
	}

	return cmd
}
