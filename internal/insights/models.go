package insights

import (
	"sort"

	"github.com/jonathan-long-lin/prompt-analyzer/internal/domain"
)

type modelAccumulator struct {
	agg           ModelAggregate
	quality       float64
	responseTime  float64
	responseCount int
	cost          float64
}

// ComputeModels groups records by model and summarizes each model's
// usage. Records without a response time are excluded from the response
// time mean rather than counted as zero. The usage percentages across all
// models sum to 100 up to rounding.
func ComputeModels(records []domain.PromptRecord) []ModelAggregate {
	byModel := make(map[string]*modelAccumulator)

	for i := range records {
		rec := &records[i]
		acc, ok := byModel[rec.Model]
		if !ok {
			acc = &modelAccumulator{agg: ModelAggregate{Model: rec.Model}}
			byModel[rec.Model] = acc
		}

		acc.agg.PromptCount++
		acc.agg.TotalTokens += rec.TokensUsed
		acc.quality += rec.ResponseQuality
		acc.cost += rec.Cost()
		if rec.ResponseTimeMs != nil {
			acc.responseTime += float64(*rec.ResponseTimeMs)
			acc.responseCount++
		}
	}

	total := float64(len(records))
	models := make([]ModelAggregate, 0, len(byModel))
	for _, acc := range byModel {
		n := float64(acc.agg.PromptCount)
		acc.agg.AvgTokens = round1(float64(acc.agg.TotalTokens) / n)
		acc.agg.AvgQuality = round2(acc.quality / n)
		if acc.responseCount > 0 {
			acc.agg.AvgResponseTime = round1(acc.responseTime / float64(acc.responseCount))
		}
		acc.agg.TotalCost = round3(acc.cost)
		acc.agg.UsagePercentage = round1(n / total * 100)
		models = append(models, acc.agg)
	}

	sort.Slice(models, func(i, j int) bool {
		if models[i].PromptCount != models[j].PromptCount {
			return models[i].PromptCount > models[j].PromptCount
		}
		return models[i].Model < models[j].Model
	})
	return models
}
