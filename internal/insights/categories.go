package insights

import (
	"sort"

	"github.com/jonathan-long-lin/prompt-analyzer/internal/domain"
)

type categoryAccumulator struct {
	agg     CategoryAggregate
	tokens  float64
	quality float64
	length  float64
}

// ComputeCategories groups records by category and summarizes each one,
// ordered by prompt count descending (category ascending on ties).
func ComputeCategories(records []domain.PromptRecord) []CategoryAggregate {
	byCategory := make(map[string]*categoryAccumulator)

	for i := range records {
		rec := &records[i]
		acc, ok := byCategory[rec.Category]
		if !ok {
			acc = &categoryAccumulator{agg: CategoryAggregate{Category: rec.Category}}
			byCategory[rec.Category] = acc
		}

		acc.agg.PromptCount++
		acc.tokens += float64(rec.TokensUsed)
		acc.quality += rec.ResponseQuality
		acc.length += float64(rec.EffectivePromptLength())
	}

	total := float64(len(records))
	categories := make([]CategoryAggregate, 0, len(byCategory))
	for _, acc := range byCategory {
		n := float64(acc.agg.PromptCount)
		acc.agg.AvgTokens = round1(acc.tokens / n)
		acc.agg.AvgQuality = round2(acc.quality / n)
		acc.agg.AvgPromptLength = round1(acc.length / n)
		acc.agg.UsagePercentage = round1(n / total * 100)
		categories = append(categories, acc.agg)
	}

	sort.Slice(categories, func(i, j int) bool {
		if categories[i].PromptCount != categories[j].PromptCount {
			return categories[i].PromptCount > categories[j].PromptCount
		}
		return categories[i].Category < categories[j].Category
	})
	return categories
}
