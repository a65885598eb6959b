package insights

import (
	"math"
	"sort"

	"github.com/jonathan-long-lin/prompt-analyzer/internal/domain"
)

// lowQualityThreshold marks the response quality below which a record
// counts as low quality.
const lowQualityThreshold = 3.0

// QualityBand describes one quality bucket: every record with
// ResponseQuality <= UpperBound (and above the previous band's bound)
// falls into it.
type QualityBand struct {
	Label      string  `json:"label" yaml:"label"`
	UpperBound float64 `json:"upper_bound" yaml:"upper_bound"`
}

// DefaultQualityBands returns the standard 1-5 rating bands.
func DefaultQualityBands() []QualityBand {
	return []QualityBand{
		{Label: "Poor", UpperBound: 2},
		{Label: "Fair", UpperBound: 3},
		{Label: "Good", UpperBound: 4},
		{Label: "Excellent", UpperBound: 5},
	}
}

// ComputeQuality reports the distribution of response quality across the
// given bands, its dispersion, a profile of low-quality responses, and
// average quality per prompt-length tercile.
func ComputeQuality(records []domain.PromptRecord, bands []QualityBand) QualityInsights {
	if len(bands) == 0 {
		bands = DefaultQualityBands()
	}

	insights := QualityInsights{
		Distribution:   make([]BandCount, len(bands)),
		LengthTerciles: []TercileStat{},
	}
	for i, band := range bands {
		insights.Distribution[i] = BandCount{Label: band.Label}
	}

	if len(records) == 0 {
		return insights
	}

	qualitySum := 0.0
	lowLengthSum := 0.0
	lowCategories := make(map[string]int)
	lowModels := make(map[string]int)

	for i := range records {
		rec := &records[i]
		qualitySum += rec.ResponseQuality

		for j, band := range bands {
			if rec.ResponseQuality <= band.UpperBound {
				insights.Distribution[j].Count++
				break
			}
		}

		if rec.ResponseQuality < lowQualityThreshold {
			insights.LowQualityCount++
			lowLengthSum += float64(rec.EffectivePromptLength())
			lowCategories[rec.Category]++
			lowModels[rec.Model]++
		}
	}

	mean := qualitySum / float64(len(records))
	insights.AvgQuality = round2(mean)
	insights.QualityStdDev = round2(sampleStdDev(records, mean))

	if insights.LowQualityCount > 0 {
		insights.LowQuality = &LowQualityProfile{
			AvgPromptLength:    round1(lowLengthSum / float64(insights.LowQualityCount)),
			MostCommonCategory: mode(lowCategories),
			MostCommonModel:    mode(lowModels),
		}
	}

	insights.LengthTerciles = computeLengthTerciles(records)
	return insights
}

func sampleStdDev(records []domain.PromptRecord, mean float64) float64 {
	if len(records) < 2 {
		return 0
	}
	sumSquares := 0.0
	for i := range records {
		d := records[i].ResponseQuality - mean
		sumSquares += d * d
	}
	return math.Sqrt(sumSquares / float64(len(records)-1))
}

// mode returns the most frequent key, preferring the lexicographically
// smallest on ties so the result is deterministic.
func mode(counts map[string]int) string {
	best := ""
	bestCount := -1
	for key, count := range counts {
		if count > bestCount || (count == bestCount && key < best) {
			best = key
			bestCount = count
		}
	}
	return best
}

var tercileLabels = [3]string{"short", "medium", "long"}

// computeLengthTerciles sorts records by prompt length and splits them
// into three equal-sized groups, reporting average quality per group.
// Fewer records than terciles yields fewer (non-empty) groups.
func computeLengthTerciles(records []domain.PromptRecord) []TercileStat {
	sorted := make([]*domain.PromptRecord, len(records))
	for i := range records {
		sorted[i] = &records[i]
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EffectivePromptLength() < sorted[j].EffectivePromptLength()
	})

	n := len(sorted)
	terciles := make([]TercileStat, 0, 3)
	for i := 0; i < 3; i++ {
		lo, hi := i*n/3, (i+1)*n/3
		if lo == hi {
			continue
		}

		stat := TercileStat{Label: tercileLabels[i], PromptCount: hi - lo}
		lengthSum, qualitySum := 0.0, 0.0
		for _, rec := range sorted[lo:hi] {
			lengthSum += float64(rec.EffectivePromptLength())
			qualitySum += rec.ResponseQuality
		}
		stat.AvgPromptLength = round1(lengthSum / float64(stat.PromptCount))
		stat.AvgQuality = round2(qualitySum / float64(stat.PromptCount))
		terciles = append(terciles, stat)
	}
	return terciles
}
