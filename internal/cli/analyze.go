package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan-long-lin/prompt-analyzer/internal/analyzer"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [prompt]",
	Short: "Analyze a single prompt",
	Long: `Analyze a prompt and print the result as JSON.

The prompt is taken from the command line arguments, or from stdin when
no arguments are given:

  prompt-analyzer analyze "Explain how garbage collection works in Go."
  cat prompt.txt | prompt-analyzer analyze`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	prompt := strings.Join(args, " ")
	if prompt == "" {
		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		prompt = string(input)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	a := analyzer.New(analyzer.Lexicon{
		StopWords:     cfg.Analyzer.StopWords,
		PositiveWords: cfg.Analyzer.PositiveWords,
		NegativeWords: cfg.Analyzer.NegativeWords,
	})

	result, err := a.Analyze(prompt)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
