package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonathan-long-lin/prompt-analyzer/internal/domain"
)

const validLine = `{"prompt":"Write a haiku about autumn leaves","user":"Alice Chen","user_id":"usr_001","timestamp":"2025-03-12T10:15:00Z","model":"gpt-4","category":"creative","tokens_used":150,"response_quality":4.5,"session_id":"sess_000042","prompt_length":33,"response_time_ms":1200,"cost_usd":0.0045}`

func TestRead_ValidRecord(t *testing.T) {
	l := NewLoader(Options{})

	records, err := l.Read(strings.NewReader(validLine+"\n"), "test.jsonl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	assertEqual(t, "Prompt", "Write a haiku about autumn leaves", rec.Prompt)
	assertEqual(t, "User", "Alice Chen", rec.User)
	assertEqual(t, "UserID", "usr_001", rec.UserID)
	assertEqual(t, "Timestamp", time.Date(2025, 3, 12, 10, 15, 0, 0, time.UTC), rec.Timestamp)
	assertEqual(t, "Model", "gpt-4", rec.Model)
	assertEqual(t, "Category", "creative", rec.Category)
	assertEqual(t, "TokensUsed", int64(150), rec.TokensUsed)
	assertEqual(t, "ResponseQuality", 4.5, rec.ResponseQuality)
	assertEqual(t, "SessionID", "sess_000042", rec.SessionID)

	if rec.PromptLength == nil || *rec.PromptLength != 33 {
		t.Errorf("PromptLength: expected 33, got %v", rec.PromptLength)
	}
	if rec.ResponseTimeMs == nil || *rec.ResponseTimeMs != 1200 {
		t.Errorf("ResponseTimeMs: expected 1200, got %v", rec.ResponseTimeMs)
	}
	if rec.CostUSD == nil || *rec.CostUSD != 0.0045 {
		t.Errorf("CostUSD: expected 0.0045, got %v", rec.CostUSD)
	}
}

func TestRead_MalformedRecords(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"invalid JSON", `{not json`},
		{"missing prompt", `{"user":"A","user_id":"usr_001","timestamp":"2025-03-12T10:15:00Z","model":"m","category":"c","tokens_used":1,"response_quality":3,"session_id":"s"}`},
		{"missing session_id", `{"prompt":"p","user":"A","user_id":"usr_001","timestamp":"2025-03-12T10:15:00Z","model":"m","category":"c","tokens_used":1,"response_quality":3}`},
		{"bad timestamp", `{"prompt":"p","user":"A","user_id":"usr_001","timestamp":"12/03/2025","model":"m","category":"c","tokens_used":1,"response_quality":3,"session_id":"s"}`},
		{"negative tokens", `{"prompt":"p","user":"A","user_id":"usr_001","timestamp":"2025-03-12T10:15:00Z","model":"m","category":"c","tokens_used":-1,"response_quality":3,"session_id":"s"}`},
		{"quality below range", `{"prompt":"p","user":"A","user_id":"usr_001","timestamp":"2025-03-12T10:15:00Z","model":"m","category":"c","tokens_used":1,"response_quality":0.5,"session_id":"s"}`},
		{"quality above range", `{"prompt":"p","user":"A","user_id":"usr_001","timestamp":"2025-03-12T10:15:00Z","model":"m","category":"c","tokens_used":1,"response_quality":5.5,"session_id":"s"}`},
		{"negative cost", `{"prompt":"p","user":"A","user_id":"usr_001","timestamp":"2025-03-12T10:15:00Z","model":"m","category":"c","tokens_used":1,"response_quality":3,"session_id":"s","cost_usd":-0.01}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Default mode skips the bad line and keeps the good one.
			l := NewLoader(Options{})
			input := tt.line + "\n" + validLine + "\n"
			records, err := l.Read(strings.NewReader(input), "test.jsonl")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(records) != 1 {
				t.Fatalf("expected bad line to be skipped, got %d records", len(records))
			}

			// Strict mode aborts with a MalformedRecordError.
			strict := NewLoader(Options{Strict: true})
			_, err = strict.Read(strings.NewReader(input), "test.jsonl")
			var recErr *domain.MalformedRecordError
			if !errors.As(err, &recErr) {
				t.Fatalf("expected MalformedRecordError, got %v", err)
			}
			assertEqual(t, "File", "test.jsonl", recErr.File)
			assertEqual(t, "Line", 1, recErr.Line)
		})
	}
}

func TestRead_SkipsBlankLines(t *testing.T) {
	l := NewLoader(Options{})

	input := "\n" + validLine + "\n\n" + validLine + "\n"
	records, err := l.Read(strings.NewReader(input), "test.jsonl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEqual(t, "records", 2, len(records))
}

func TestRead_FillsPromptLength(t *testing.T) {
	l := NewLoader(Options{})

	line := `{"prompt":"hello","user":"A","user_id":"usr_001","timestamp":"2025-03-12T10:15:00Z","model":"m","category":"c","tokens_used":1,"response_quality":3,"session_id":"s"}`
	records, err := l.Read(strings.NewReader(line), "test.jsonl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records[0].PromptLength == nil || *records[0].PromptLength != 5 {
		t.Errorf("PromptLength: expected 5, got %v", records[0].PromptLength)
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()

	fileA := filepath.Join(dir, "a.jsonl")
	fileB := filepath.Join(dir, "b.jsonl")
	if err := os.WriteFile(fileA, []byte(validLine+"\n"+validLine+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fileB, []byte(validLine+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(Options{})
	records, err := l.LoadFiles(fileA, fileB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEqual(t, "records", 3, len(records))
}

func TestLoadFile_Missing(t *testing.T) {
	l := NewLoader(Options{})
	if _, err := l.LoadFile(filepath.Join(t.TempDir(), "nope.jsonl")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseRecord_ErrorCarriesLocation(t *testing.T) {
	l := NewLoader(Options{})

	_, err := l.ParseRecord([]byte(`{broken`), "data.jsonl", 7)
	var recErr *domain.MalformedRecordError
	if !errors.As(err, &recErr) {
		t.Fatalf("expected MalformedRecordError, got %v", err)
	}
	assertEqual(t, "File", "data.jsonl", recErr.File)
	assertEqual(t, "Line", 7, recErr.Line)
}

func assertEqual[T comparable](t *testing.T, name string, expected, actual T) {
	t.Helper()
	if expected != actual {
		t.Errorf("%s: expected %v, got %v", name, expected, actual)
	}
}
