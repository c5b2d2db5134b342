package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// newChatCmd creates the interactive chat subcommand.
func newChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Long: `Chat starts an interactive session against the local support engine.
Type "quit" or "exit" to leave.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newResolver()
			if err != nil {
				return err
			}

			color.New(color.FgGreen, color.Bold).Println("Nike Customer Support")
			fmt.Println("Ask about products, sizing, shipping, returns, and more.")
			fmt.Println(`Type "quit" or "exit" to leave.`)
			fmt.Println()

			scanner := bufio.NewScanner(os.Stdin)
			for {
				color.New(color.FgCyan, color.Bold).Printf("You: ")
				if !scanner.Scan() {
					break
				}

				line := strings.TrimSpace(scanner.Text())
				switch strings.ToLower(line) {
				case "quit", "exit", "bye":
					color.New(color.FgGreen, color.Bold).Printf("Bot: ")
					fmt.Println("Thanks for visiting! Have a great day!")
					return nil
				}

				ctx, cancel := context.WithTimeout(context.Background(), cfg.LLM.Timeout+5*time.Second)
				result := res.Resolve(ctx, line)
				cancel()

				color.New(color.FgGreen, color.Bold).Printf("Bot: ")
				fmt.Println(result.Reply)
				if verbose {
					Info("source=%s intent=%s confidence=%.3f", result.Source, result.Intent, result.Confidence)
				}
				fmt.Println()
			}

			return scanner.Err()
		},
	}

	return cmd
}
