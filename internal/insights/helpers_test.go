package insights

import (
	"math"
	"testing"
	"time"

	"github.com/jonathan-long-lin/prompt-analyzer/internal/domain"
)

func makeRecord(userID, model, category string, ts time.Time, tokens int64, quality float64) domain.PromptRecord {
	return domain.PromptRecord{
		Prompt:          "example prompt",
		User:            "User " + userID,
		UserID:          userID,
		Timestamp:       ts,
		Model:           model,
		Category:        category,
		TokensUsed:      tokens,
		ResponseQuality: quality,
		SessionID:       "sess_000001",
	}
}

func intPtr(v int) *int             { return &v }
func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func assertEqual[T comparable](t *testing.T, name string, expected, actual T) {
	t.Helper()
	if expected != actual {
		t.Errorf("%s: expected %v, got %v", name, expected, actual)
	}
}

func assertFloatNear(t *testing.T, name string, expected, actual float64) {
	t.Helper()
	if math.Abs(expected-actual) > 0.0001 {
		t.Errorf("%s: expected %.6f, got %.6f", name, expected, actual)
	}
}
