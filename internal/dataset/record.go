package dataset

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan-long-lin/prompt-analyzer/internal/domain"
)

// rawRecord is the wire shape of one JSONL line. Required fields are
// pointers so a missing field is distinguishable from a zero value; the
// legacy aliases cover the non-conforming variant observed in the source
// dataset.
type rawRecord struct {
	Prompt          *string  `json:"prompt"`
	User            *string  `json:"user"`
	UserID          *string  `json:"user_id"`
	Timestamp       *string  `json:"timestamp"`
	Model           *string  `json:"model"`
	Category        *string  `json:"category"`
	TokensUsed      *int64   `json:"tokens_used"`
	ResponseQuality *float64 `json:"response_quality"`
	SessionID       *string  `json:"session_id"`

	PromptLength   *int     `json:"prompt_length"`
	ResponseTimeMs *int64   `json:"response_time_ms"`
	CostUSD        *float64 `json:"cost_usd"`

	// Legacy field scheme
	UserName     *string  `json:"user_name"`
	ModelUsed    *string  `json:"model_used"`
	QualityScore *float64 `json:"quality_score"`
	ResponseTime *int64   `json:"response_time"`
	Cost         *float64 `json:"cost"`
}

func (l *Loader) parseLine(line []byte) (*domain.PromptRecord, error) {
	var raw rawRecord
	if err := json.Unmarshal(line, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if raw.isLegacy() {
		if !l.opts.NormalizeLegacy {
			return nil, fmt.Errorf("record uses the legacy field scheme")
		}
		l.normalizeLegacy(&raw)
	}

	if err := validateRequired(&raw); err != nil {
		return nil, err
	}

	ts, err := time.Parse(time.RFC3339, *raw.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("timestamp %q is not ISO 8601", *raw.Timestamp)
	}

	rec := &domain.PromptRecord{
		Prompt:          *raw.Prompt,
		User:            *raw.User,
		UserID:          *raw.UserID,
		Timestamp:       ts,
		Model:           *raw.Model,
		Category:        *raw.Category,
		TokensUsed:      *raw.TokensUsed,
		ResponseQuality: *raw.ResponseQuality,
		SessionID:       *raw.SessionID,
		PromptLength:    raw.PromptLength,
		ResponseTimeMs:  raw.ResponseTimeMs,
		CostUSD:         raw.CostUSD,
	}

	if err := validateRanges(rec); err != nil {
		return nil, err
	}

	// Derived column: the original dataset carries prompt_length only on
	// newer records.
	if rec.PromptLength == nil {
		length := rec.EffectivePromptLength()
		rec.PromptLength = &length
	}

	return rec, nil
}

func validateRequired(raw *rawRecord) error {
	required := []struct {
		name string
		ok   bool
	}{
		{"prompt", raw.Prompt != nil},
		{"user", raw.User != nil},
		{"user_id", raw.UserID != nil},
		{"timestamp", raw.Timestamp != nil},
		{"model", raw.Model != nil},
		{"category", raw.Category != nil},
		{"tokens_used", raw.TokensUsed != nil},
		{"response_quality", raw.ResponseQuality != nil},
		{"session_id", raw.SessionID != nil},
	}
	for _, field := range required {
		if !field.ok {
			return fmt.Errorf("missing required field %q", field.name)
		}
	}
	return nil
}

func validateRanges(rec *domain.PromptRecord) error {
	if rec.TokensUsed < 0 {
		return fmt.Errorf("tokens_used %d is negative", rec.TokensUsed)
	}
	if rec.ResponseQuality < 1 || rec.ResponseQuality > 5 {
		return fmt.Errorf("response_quality %.2f is outside [1,5]", rec.ResponseQuality)
	}
	if rec.PromptLength != nil && *rec.PromptLength < 0 {
		return fmt.Errorf("prompt_length %d is negative", *rec.PromptLength)
	}
	if rec.ResponseTimeMs != nil && *rec.ResponseTimeMs < 0 {
		return fmt.Errorf("response_time_ms %d is negative", *rec.ResponseTimeMs)
	}
	if rec.CostUSD != nil && *rec.CostUSD < 0 {
		return fmt.Errorf("cost_usd %.4f is negative", *rec.CostUSD)
	}
	return nil
}
