package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan-long-lin/prompt-analyzer/internal/dataset"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate JSONL dataset files against the record schema",
	Long: `Check every record in the given JSONL files against the PromptRecord
schema and print a per-file summary. Exits non-zero when any record is
invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

var validateNormalize bool

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validateNormalize, "normalize-legacy", false,
		"Accept records in the legacy field scheme")
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	totalRecords, totalInvalid := 0, 0

	for _, path := range args {
		valid, invalid, err := validateFile(path)
		if err != nil {
			return err
		}

		totalRecords += valid + invalid
		totalInvalid += invalid

		status := "VALID"
		if invalid > 0 {
			status = "INVALID"
		}
		fmt.Fprintf(out, "%s: %s (%d records, %d invalid)\n", path, status, valid+invalid, invalid)
	}

	fmt.Fprintf(out, "total: %d records, %d invalid\n", totalRecords, totalInvalid)
	if totalInvalid > 0 {
		return fmt.Errorf("%d of %d records failed validation", totalInvalid, totalRecords)
	}
	return nil
}

func validateFile(path string) (valid, invalid int, err error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	// Count per line so invalid records are tallied rather than skipped
	// silently.
	loader := dataset.NewLoader(dataset.Options{NormalizeLegacy: validateNormalize})

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 1024*1024)
	scanner.Buffer(buf, 10*1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		if _, recErr := loader.ParseRecord(line, path, lineNum); recErr != nil {
			fmt.Fprintf(os.Stderr, "  %v\n", recErr)
			invalid++
			continue
		}
		valid++
	}
	if err := scanner.Err(); err != nil {
		return valid, invalid, fmt.Errorf("error reading %s: %w", path, err)
	}
	return valid, invalid, nil
}
