// Package dataset loads historical prompt records from line-delimited
// JSON files. It is the validation boundary between persisted data and
// the engine: every record it returns conforms to the PromptRecord shape.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jonathan-long-lin/prompt-analyzer/internal/domain"
)

// Options controls loader behavior.
type Options struct {
	// Strict aborts the whole load on the first malformed record instead
	// of skipping it.
	Strict bool
	// NormalizeLegacy converts records in the legacy field scheme
	// (user_name/model_used/quality_score/...) to the canonical shape
	// instead of rejecting them.
	NormalizeLegacy bool
	// Logger receives a warning per skipped record. Nil disables logging.
	Logger *slog.Logger
}

// Loader reads and validates JSONL prompt records.
type Loader struct {
	opts           Options
	sessionCounter int
}

// NewLoader creates a loader with the given options.
func NewLoader(opts Options) *Loader {
	return &Loader{opts: opts}
}

// LoadFiles reads every file in order and concatenates the records.
func (l *Loader) LoadFiles(paths ...string) ([]domain.PromptRecord, error) {
	var all []domain.PromptRecord
	for _, path := range paths {
		records, err := l.LoadFile(path)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}
	return all, nil
}

// LoadFile reads one JSONL file.
func (l *Loader) LoadFile(path string) ([]domain.PromptRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	return l.Read(file, path)
}

// ParseRecord parses and validates a single JSONL line. The file name
// and line number are used in the returned MalformedRecordError only.
func (l *Loader) ParseRecord(line []byte, file string, lineNum int) (*domain.PromptRecord, error) {
	rec, err := l.parseLine(line)
	if err != nil {
		return nil, &domain.MalformedRecordError{File: file, Line: lineNum, Reason: err.Error()}
	}
	return rec, nil
}

// Read parses JSONL records from r. The name is used in error messages
// and log lines only.
func (l *Loader) Read(r io.Reader, name string) ([]domain.PromptRecord, error) {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for large lines
	buf := make([]byte, 0, 1024*1024)
	scanner.Buffer(buf, 10*1024*1024)

	var records []domain.PromptRecord
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		rec, err := l.parseLine(line)
		if err != nil {
			recErr := &domain.MalformedRecordError{File: name, Line: lineNum, Reason: err.Error()}
			if l.opts.Strict {
				return nil, recErr
			}
			if l.opts.Logger != nil {
				l.opts.Logger.Warn("skipping malformed record",
					"file", name, "line", lineNum, "reason", err.Error())
			}
			continue
		}

		records = append(records, *rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dataset: %w", err)
	}
	return records, nil
}
