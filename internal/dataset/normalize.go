package dataset

import (
	"fmt"
	"strings"
)

// isLegacy reports whether a record uses the non-conforming field scheme
// found in the expanded source datasets.
func (r *rawRecord) isLegacy() bool {
	return r.UserName != nil || r.ModelUsed != nil || r.QualityScore != nil ||
		r.ResponseTime != nil || r.Cost != nil
}

// normalizeLegacy maps the legacy field scheme onto the canonical one:
// user_name -> user, model_used -> model, quality_score ->
// response_quality, response_time -> response_time_ms, cost -> cost_usd,
// u_XXX user ids -> usr_XXX, and a generated session_id when missing.
func (l *Loader) normalizeLegacy(raw *rawRecord) {
	if raw.User == nil && raw.UserName != nil {
		raw.User = raw.UserName
	}
	if raw.Model == nil && raw.ModelUsed != nil {
		raw.Model = raw.ModelUsed
	}
	if raw.ResponseQuality == nil && raw.QualityScore != nil {
		raw.ResponseQuality = raw.QualityScore
	}
	if raw.ResponseTimeMs == nil && raw.ResponseTime != nil {
		raw.ResponseTimeMs = raw.ResponseTime
	}
	if raw.CostUSD == nil && raw.Cost != nil {
		raw.CostUSD = raw.Cost
	}

	if raw.UserID != nil {
		normalized := normalizeUserID(*raw.UserID)
		raw.UserID = &normalized
	}

	if raw.SessionID == nil {
		l.sessionCounter++
		sessionID := fmt.Sprintf("sess_%06d", l.sessionCounter)
		raw.SessionID = &sessionID
	}
}

// normalizeUserID converts legacy u_XXX ids to the usr_XXX format,
// zero-padding the numeric part to three digits.
func normalizeUserID(id string) string {
	if !strings.HasPrefix(id, "u_") {
		return id
	}
	number := strings.TrimPrefix(id, "u_")
	for len(number) < 3 {
		number = "0" + number
	}
	return "usr_" + number
}
