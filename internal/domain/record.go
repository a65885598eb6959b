package domain

import (
	"time"
	"unicode/utf8"
)

// PromptRecord is a single historical usage entry. Records are immutable
// once loaded; the loader is responsible for schema validation so every
// PromptRecord the engine sees is well-formed.
type PromptRecord struct {
	Prompt          string    `json:"prompt"`
	User            string    `json:"user"`
	UserID          string    `json:"user_id"`
	Timestamp       time.Time `json:"timestamp"`
	Model           string    `json:"model"`
	Category        string    `json:"category"`
	TokensUsed      int64     `json:"tokens_used"`
	ResponseQuality float64   `json:"response_quality"`
	SessionID       string    `json:"session_id"`

	PromptLength   *int     `json:"prompt_length,omitempty"`
	ResponseTimeMs *int64   `json:"response_time_ms,omitempty"`
	CostUSD        *float64 `json:"cost_usd,omitempty"`
}

// EffectivePromptLength returns the recorded prompt length when present,
// otherwise the character count of the prompt text.
func (r *PromptRecord) EffectivePromptLength() int {
	if r.PromptLength != nil {
		return *r.PromptLength
	}
	return utf8.RuneCountInString(r.Prompt)
}

// Cost returns the recorded cost, treating a missing value as zero.
func (r *PromptRecord) Cost() float64 {
	if r.CostUSD != nil {
		return *r.CostUSD
	}
	return 0
}
