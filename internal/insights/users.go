package insights

import (
	"sort"

	"github.com/jonathan-long-lin/prompt-analyzer/internal/domain"
)

type userAccumulator struct {
	agg       UserAggregate
	tokensSum int64
	quality   float64
	length    float64
	cost      float64
}

// ComputeUsers groups records by user_id and summarizes each user's
// activity, ordered by prompt count descending (user_id ascending on
// ties). A limit > 0 truncates the result.
func ComputeUsers(records []domain.PromptRecord, limit int) []UserAggregate {
	byUser := make(map[string]*userAccumulator)

	for i := range records {
		rec := &records[i]
		acc, ok := byUser[rec.UserID]
		if !ok {
			acc = &userAccumulator{agg: UserAggregate{
				UserID:      rec.UserID,
				UserName:    rec.User,
				FirstPrompt: rec.Timestamp,
				LastPrompt:  rec.Timestamp,
			}}
			byUser[rec.UserID] = acc
		}

		acc.agg.PromptCount++
		acc.tokensSum += rec.TokensUsed
		acc.quality += rec.ResponseQuality
		acc.length += float64(rec.EffectivePromptLength())
		acc.cost += rec.Cost()

		if rec.Timestamp.Before(acc.agg.FirstPrompt) {
			acc.agg.FirstPrompt = rec.Timestamp
		}
		if rec.Timestamp.After(acc.agg.LastPrompt) {
			acc.agg.LastPrompt = rec.Timestamp
		}
	}

	users := make([]UserAggregate, 0, len(byUser))
	for _, acc := range byUser {
		n := float64(acc.agg.PromptCount)
		acc.agg.TotalTokens = acc.tokensSum
		acc.agg.AvgTokens = round1(float64(acc.tokensSum) / n)
		acc.agg.AvgQuality = round2(acc.quality / n)
		acc.agg.AvgPromptLength = round1(acc.length / n)
		acc.agg.TotalCost = round3(acc.cost)
		users = append(users, acc.agg)
	}

	sort.Slice(users, func(i, j int) bool {
		if users[i].PromptCount != users[j].PromptCount {
			return users[i].PromptCount > users[j].PromptCount
		}
		return users[i].UserID < users[j].UserID
	})

	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}
	return users
}
