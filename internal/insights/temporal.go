package insights

import (
	"fmt"
	"sort"
	"time"

	"github.com/jonathan-long-lin/prompt-analyzer/internal/domain"
)

// Period selects the temporal bucketing granularity.
type Period string

const (
	PeriodHourly  Period = "hourly"
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// ParsePeriod validates a period string from an external caller.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodHourly, PeriodDaily, PeriodWeekly, PeriodMonthly:
		return Period(s), nil
	}
	return "", fmt.Errorf("invalid period %q: must be one of hourly, daily, weekly, monthly", s)
}

type temporalAccumulator struct {
	bucket  TemporalBucket
	quality float64
	users   map[string]struct{}
}

// ComputeTemporal groups records by truncating each timestamp (in UTC) to
// the period boundary and summarizes each bucket. Buckets are ordered
// chronologically ascending.
func ComputeTemporal(records []domain.PromptRecord, period Period) []TemporalBucket {
	buckets := make(map[time.Time]*temporalAccumulator)

	for i := range records {
		rec := &records[i]
		start := truncateToPeriod(rec.Timestamp.UTC(), period)

		acc, ok := buckets[start]
		if !ok {
			acc = &temporalAccumulator{
				bucket: TemporalBucket{
					Period:      periodLabel(start, period),
					PeriodStart: start,
				},
				users: make(map[string]struct{}),
			}
			buckets[start] = acc
		}

		acc.bucket.PromptCount++
		acc.bucket.TotalTokens += rec.TokensUsed
		acc.quality += rec.ResponseQuality
		acc.users[rec.UserID] = struct{}{}
	}

	result := make([]TemporalBucket, 0, len(buckets))
	for _, acc := range buckets {
		acc.bucket.AvgQuality = round2(acc.quality / float64(acc.bucket.PromptCount))
		acc.bucket.UniqueUsers = len(acc.users)
		result = append(result, acc.bucket)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].PeriodStart.Before(result[j].PeriodStart)
	})
	return result
}

func truncateToPeriod(t time.Time, period Period) time.Time {
	switch period {
	case PeriodHourly:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	case PeriodWeekly:
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		// Roll back to Monday
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case PeriodMonthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	default: // daily
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
}

func periodLabel(start time.Time, period Period) string {
	switch period {
	case PeriodHourly:
		return start.Format("2006-01-02 15:00")
	case PeriodWeekly:
		return "Week of " + start.Format("2006-01-02")
	case PeriodMonthly:
		return start.Format("2006-01")
	default:
		return start.Format("2006-01-02")
	}
}
