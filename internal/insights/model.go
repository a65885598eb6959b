// Package insights computes the six analytics views over a collection of
// historical prompt records. Every view is a pure, read-only fold: an
// empty record collection yields a defined zero result, never an error.
package insights

import "time"

// DateRange spans the earliest and latest record timestamps.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overview summarizes the whole dataset.
type Overview struct {
	TotalPrompts int        `json:"total_prompts"`
	UniqueUsers  int        `json:"unique_users"`
	DateRange    *DateRange `json:"date_range"`
	TotalTokens  int64      `json:"total_tokens"`
	AvgQuality   float64    `json:"avg_quality"`
	TotalCost    float64    `json:"total_cost"`
}

// UserAggregate summarizes one user's activity.
type UserAggregate struct {
	UserID          string    `json:"user_id"`
	UserName        string    `json:"user_name"`
	PromptCount     int       `json:"prompt_count"`
	TotalTokens     int64     `json:"total_tokens"`
	AvgTokens       float64   `json:"avg_tokens"`
	AvgQuality      float64   `json:"avg_quality"`
	AvgPromptLength float64   `json:"avg_prompt_length"`
	FirstPrompt     time.Time `json:"first_prompt"`
	LastPrompt      time.Time `json:"last_prompt"`
	TotalCost       float64   `json:"total_cost"`
}

// TemporalBucket summarizes one time period. UniqueUsers is always
// computed, for every granularity; presentation layers may hide it.
type TemporalBucket struct {
	Period      string    `json:"period"`
	PeriodStart time.Time `json:"period_start"`
	PromptCount int       `json:"prompt_count"`
	TotalTokens int64     `json:"total_tokens"`
	AvgQuality  float64   `json:"avg_quality"`
	UniqueUsers int       `json:"unique_users"`
}

// ModelAggregate summarizes usage of one model.
type ModelAggregate struct {
	Model           string  `json:"model"`
	PromptCount     int     `json:"prompt_count"`
	TotalTokens     int64   `json:"total_tokens"`
	AvgTokens       float64 `json:"avg_tokens"`
	AvgQuality      float64 `json:"avg_quality"`
	AvgResponseTime float64 `json:"avg_response_time"`
	TotalCost       float64 `json:"total_cost"`
	UsagePercentage float64 `json:"usage_percentage"`
}

// CategoryAggregate summarizes usage of one prompt category.
type CategoryAggregate struct {
	Category        string  `json:"category"`
	PromptCount     int     `json:"prompt_count"`
	AvgTokens       float64 `json:"avg_tokens"`
	AvgQuality      float64 `json:"avg_quality"`
	AvgPromptLength float64 `json:"avg_prompt_length"`
	UsagePercentage float64 `json:"usage_percentage"`
}

// BandCount is the number of records falling into one quality band.
type BandCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// TercileStat reports average quality for one prompt-length tercile.
type TercileStat struct {
	Label           string  `json:"label"`
	PromptCount     int     `json:"prompt_count"`
	AvgPromptLength float64 `json:"avg_prompt_length"`
	AvgQuality      float64 `json:"avg_quality"`
}

// LowQualityProfile describes common characteristics of low-quality
// responses.
type LowQualityProfile struct {
	AvgPromptLength    float64 `json:"avg_prompt_length"`
	MostCommonCategory string  `json:"most_common_category"`
	MostCommonModel    string  `json:"most_common_model"`
}

// QualityInsights is the quality view: band distribution, dispersion, and
// the correlation between prompt length and response quality.
type QualityInsights struct {
	Distribution    []BandCount        `json:"quality_distribution"`
	AvgQuality      float64            `json:"avg_quality"`
	QualityStdDev   float64            `json:"quality_std"`
	LowQualityCount int                `json:"low_quality_count"`
	LowQuality      *LowQualityProfile `json:"low_quality_characteristics,omitempty"`
	LengthTerciles  []TercileStat      `json:"length_terciles"`
}
