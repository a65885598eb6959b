// Package analyzer implements the per-prompt analysis pipeline: text
// metrics, readability scoring, keyword extraction, sentiment
// classification, and rule-based suggestions. Everything in this package
// is a pure function over its inputs; the only state an Analyzer carries
// is its immutable lexicon.
package analyzer

import (
	"math"
	"strings"

	"github.com/jonathan-long-lin/prompt-analyzer/internal/domain"
)

// Analyzer runs the full analysis pipeline with a fixed lexicon.
type Analyzer struct {
	stopWords     map[string]struct{}
	positiveWords map[string]struct{}
	negativeWords map[string]struct{}
}

// New creates an Analyzer from the given lexicon. Empty word lists fall
// back to the built-in defaults so a partially specified config still
// yields a usable analyzer.
func New(lex Lexicon) *Analyzer {
	defaults := DefaultLexicon()
	if len(lex.StopWords) == 0 {
		lex.StopWords = defaults.StopWords
	}
	if len(lex.PositiveWords) == 0 {
		lex.PositiveWords = defaults.PositiveWords
	}
	if len(lex.NegativeWords) == 0 {
		lex.NegativeWords = defaults.NegativeWords
	}

	return &Analyzer{
		stopWords:     toSet(lex.StopWords),
		positiveWords: toSet(lex.PositiveWords),
		negativeWords: toSet(lex.NegativeWords),
	}
}

// Analyze runs the full pipeline over a prompt. It returns
// domain.ErrEmptyPrompt for empty or whitespace-only input; otherwise the
// result is complete — there are no partial results.
func (a *Analyzer) Analyze(prompt string) (*domain.AnalysisResult, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, domain.ErrEmptyPrompt
	}

	metrics := ComputeTextMetrics(prompt)
	score, level := ScoreReadability(metrics)
	keywords := a.ExtractKeywords(metrics.Words)
	sentiment := a.ClassifySentiment(prompt)
	suggestions := Suggest(metrics, level, len(keywords))

	return &domain.AnalysisResult{
		WordCount:        metrics.WordCount,
		CharacterCount:   metrics.CharacterCount,
		SentenceCount:    metrics.SentenceCount,
		ParagraphCount:   metrics.ParagraphCount,
		ReadabilityScore: round2(score),
		ComplexityLevel:  level,
		Keywords:         keywords,
		Sentiment:        sentiment,
		Suggestions:      suggestions,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
