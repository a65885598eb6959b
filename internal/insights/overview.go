package insights

import (
	"github.com/jonathan-long-lin/prompt-analyzer/internal/domain"
)

// ComputeOverview folds the whole dataset into headline numbers. An empty
// dataset yields zero counts and a nil date range.
func ComputeOverview(records []domain.PromptRecord) Overview {
	if len(records) == 0 {
		return Overview{}
	}

	overview := Overview{
		TotalPrompts: len(records),
		DateRange: &DateRange{
			Start: records[0].Timestamp,
			End:   records[0].Timestamp,
		},
	}

	users := make(map[string]struct{})
	qualitySum := 0.0
	costSum := 0.0

	for i := range records {
		rec := &records[i]
		users[rec.UserID] = struct{}{}
		overview.TotalTokens += rec.TokensUsed
		qualitySum += rec.ResponseQuality
		costSum += rec.Cost()

		if rec.Timestamp.Before(overview.DateRange.Start) {
			overview.DateRange.Start = rec.Timestamp
		}
		if rec.Timestamp.After(overview.DateRange.End) {
			overview.DateRange.End = rec.Timestamp
		}
	}

	overview.UniqueUsers = len(users)
	overview.AvgQuality = round2(qualitySum / float64(len(records)))
	overview.TotalCost = round2(costSum)
	return overview
}
