package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan-long-lin/prompt-analyzer/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "prompt-analyzer",
	Short: "Linguistic analysis and usage analytics for LLM prompts",
	Long: `prompt-analyzer inspects free-text prompts and historical usage records.

Analyze a single prompt for readability, sentiment, keywords, and
improvement suggestions, or fold a JSONL dataset of historical prompt
records into usage analytics.`,
}

var configPath string

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (YAML)")
}

// loadConfig reads the config file when one was given, otherwise returns
// the defaults.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(configPath)
}
