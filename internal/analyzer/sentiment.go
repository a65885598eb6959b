package analyzer

import (
	"strings"

	"github.com/jonathan-long-lin/prompt-analyzer/internal/domain"
)

// ClassifySentiment assigns a polarity by counting lexicon hits. Every
// input classifies: a tie, including zero matches on both sides, is
// Neutral.
func (a *Analyzer) ClassifySentiment(text string) domain.Sentiment {
	positive, negative := 0, 0

	for _, word := range strings.Fields(strings.ToLower(text)) {
		token := stripNonLetters(word)
		if token == "" {
			continue
		}
		if _, ok := a.positiveWords[token]; ok {
			positive++
		}
		if _, ok := a.negativeWords[token]; ok {
			negative++
		}
	}

	switch {
	case positive > negative:
		return domain.SentimentPositive
	case negative > positive:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}
