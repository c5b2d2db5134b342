// Package main provides the support bot CLI entrypoint.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kickshq/support-bot/internal/cache"
	"github.com/kickshq/support-bot/internal/classifier"
	"github.com/kickshq/support-bot/internal/config"
	"github.com/kickshq/support-bot/internal/knowledge"
	"github.com/kickshq/support-bot/internal/llm"
	"github.com/kickshq/support-bot/internal/observability"
	"github.com/kickshq/support-bot/internal/resolver"
)

var (
	// Global flags
	cfgFile    string
	outputJSON bool
	verbose    bool

	// Configuration and logger
	cfg    *config.Config
	logger *observability.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "support-cli",
	Short: "Support bot CLI for asking questions and inspecting the classifier",
	Long: `Support bot CLI provides commands for interacting with the sneaker
customer-support engine from the terminal.

Use this tool to:
- Ask one-off support questions
- Run an interactive chat session
- Inspect intent classification for a query
- Show classifier training statistics

All commands support --json for automation.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load .env for local development; a missing file is fine
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logFormat := "console"
		if outputJSON {
			logFormat = "json"
		}

		logLevel := cfg.Observability.LogLevel
		if !verbose && !outputJSON {
			// Keep interactive output clean
			logLevel = "warn"
		}

		logger = observability.NewLogger(observability.LogConfig{
			Level:       logLevel,
			Format:      logFormat,
			ServiceName: "support-cli",
		})

		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default: uses env vars)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(newAskCmd())
	rootCmd.AddCommand(newChatCmd())
	rootCmd.AddCommand(newClassifyCmd())
	rootCmd.AddCommand(newStatsCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newResolver builds a trained resolver from the loaded configuration.
func newResolver() (*resolver.Resolver, error) {
	cls := classifier.New(logger, knowledge.TrainingData, classifier.Config{
		MaxFeatures: cfg.Classifier.MaxFeatures,
	})
	if err := cls.Train(); err != nil {
		return nil, fmt.Errorf("train classifier: %w", err)
	}

	var generator resolver.Generator
	if cfg.LLM.APIKey == "" {
		if !outputJSON {
			Warning("No API key configured, generative fallback disabled")
		}
	} else {
		generator = llm.NewClient(llm.Config{
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			BaseURL:     cfg.LLM.BaseURL,
			MaxTokens:   cfg.LLM.MaxTokens,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		})
	}

	replies := cache.NewMemoryClient(cfg.Cache.MaxEntries)

	return resolver.New(logger, cls, generator, replies, resolver.Config{
		Threshold: cfg.Classifier.ConfidenceThreshold,
		CacheTTL:  cfg.Cache.TTL,
	}, nil), nil
}

// newClassifier builds and trains a bare classifier.
func newClassifier() (*classifier.Classifier, error) {
	cls := classifier.New(logger, knowledge.TrainingData, classifier.Config{
		MaxFeatures: cfg.Classifier.MaxFeatures,
	})
	if err := cls.Train(); err != nil {
		return nil, fmt.Errorf("train classifier: %w", err)
	}
	return cls, nil
}
