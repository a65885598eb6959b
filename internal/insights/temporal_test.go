package insights

import (
	"testing"
	"time"

	"github.com/jonathan-long-lin/prompt-analyzer/internal/domain"
)

func TestParsePeriod(t *testing.T) {
	for _, valid := range []string{"hourly", "daily", "weekly", "monthly"} {
		p, err := ParsePeriod(valid)
		if err != nil {
			t.Errorf("ParsePeriod(%q): unexpected error %v", valid, err)
		}
		assertEqual(t, "period", Period(valid), p)
	}

	for _, invalid := range []string{"", "yearly", "Daily", "day"} {
		if _, err := ParsePeriod(invalid); err == nil {
			t.Errorf("ParsePeriod(%q): expected error", invalid)
		}
	}
}

func TestComputeTemporal_Bucketing(t *testing.T) {
	// 2025-03-12 is a Wednesday; 2025-04-01 is a Tuesday.
	records := []domain.PromptRecord{
		makeRecord("usr_001", "gpt-4", "coding", time.Date(2025, 3, 12, 10, 15, 0, 0, time.UTC), 100, 4),
		makeRecord("usr_002", "gpt-4", "coding", time.Date(2025, 3, 12, 10, 45, 0, 0, time.UTC), 200, 2),
		makeRecord("usr_001", "gpt-4", "coding", time.Date(2025, 3, 12, 23, 0, 0, 0, time.UTC), 50, 5),
		makeRecord("usr_001", "gpt-4", "coding", time.Date(2025, 3, 13, 1, 0, 0, 0, time.UTC), 50, 5),
		makeRecord("usr_003", "gpt-4", "coding", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 10, 3),
	}

	tests := []struct {
		period  Period
		buckets int
		first   string
		last    string
	}{
		{PeriodHourly, 4, "2025-03-12 10:00", "2025-04-01 00:00"},
		{PeriodDaily, 3, "2025-03-12", "2025-04-01"},
		{PeriodWeekly, 2, "Week of 2025-03-10", "Week of 2025-03-31"},
		{PeriodMonthly, 2, "2025-03", "2025-04"},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			got := ComputeTemporal(records, tt.period)
			if len(got) != tt.buckets {
				t.Fatalf("expected %d buckets, got %d", tt.buckets, len(got))
			}
			assertEqual(t, "first label", tt.first, got[0].Period)
			assertEqual(t, "last label", tt.last, got[len(got)-1].Period)

			for i := 1; i < len(got); i++ {
				if !got[i-1].PeriodStart.Before(got[i].PeriodStart) {
					t.Errorf("buckets not in chronological order at %d", i)
				}
			}
		})
	}
}

func TestComputeTemporal_BucketContents(t *testing.T) {
	records := []domain.PromptRecord{
		makeRecord("usr_001", "gpt-4", "coding", time.Date(2025, 3, 12, 10, 15, 0, 0, time.UTC), 100, 4),
		makeRecord("usr_002", "gpt-4", "coding", time.Date(2025, 3, 12, 10, 45, 0, 0, time.UTC), 200, 2),
		makeRecord("usr_001", "gpt-4", "coding", time.Date(2025, 3, 13, 1, 0, 0, 0, time.UTC), 50, 5),
	}

	got := ComputeTemporal(records, PeriodDaily)
	if len(got) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(got))
	}

	first := got[0]
	assertEqual(t, "PromptCount", 2, first.PromptCount)
	assertEqual(t, "TotalTokens", int64(300), first.TotalTokens)
	assertFloatNear(t, "AvgQuality", 3, first.AvgQuality)
	assertEqual(t, "UniqueUsers", 2, first.UniqueUsers)
	assertEqual(t, "PeriodStart", time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), first.PeriodStart)

	second := got[1]
	assertEqual(t, "second PromptCount", 1, second.PromptCount)
	assertEqual(t, "second UniqueUsers", 1, second.UniqueUsers)
}

func TestComputeTemporal_NormalizesToUTC(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	// 01:00 at UTC+2 is 23:00 the previous day in UTC.
	records := []domain.PromptRecord{
		makeRecord("usr_001", "gpt-4", "coding", time.Date(2025, 3, 12, 1, 0, 0, 0, zone), 100, 4),
	}

	got := ComputeTemporal(records, PeriodDaily)
	if len(got) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(got))
	}
	assertEqual(t, "Period", "2025-03-11", got[0].Period)
}

func TestComputeTemporal_Empty(t *testing.T) {
	got := ComputeTemporal(nil, PeriodDaily)
	if len(got) != 0 {
		t.Errorf("expected no buckets, got %d", len(got))
	}
}
