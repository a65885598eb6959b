package analyzer

import (
	"github.com/jonathan-long-lin/prompt-analyzer/internal/domain"
)

const (
	suggestAddDetail      = "Consider adding more detail and context to make your prompt more specific."
	suggestShorten        = "Consider shortening your prompt for better clarity."
	suggestSplitSentences = "Try breaking your prompt into multiple sentences for better readability."
	suggestSimplify       = "Consider simplifying your language to make the prompt easier to follow."
	suggestConcreteTerms  = "Add specific, concrete terms so the intent of the prompt is clear."
	suggestWellStructured = "Your prompt looks well-structured!"
)

// Suggest derives improvement hints from the earlier analysis stages.
// Rules are evaluated in a fixed order and every matching message is
// included; when nothing matches, a single affirmative message is
// returned instead.
func Suggest(m domain.TextMetrics, level domain.ComplexityLevel, keywordCount int) []string {
	var suggestions []string

	if m.WordCount < 10 {
		suggestions = append(suggestions, suggestAddDetail)
	}
	if m.WordCount > 200 {
		suggestions = append(suggestions, suggestShorten)
	}
	if m.SentenceCount == 1 && m.WordCount > 30 {
		suggestions = append(suggestions, suggestSplitSentences)
	}
	if level == domain.ComplexityDifficult || level == domain.ComplexityVeryDifficult {
		suggestions = append(suggestions, suggestSimplify)
	}
	if keywordCount == 0 {
		suggestions = append(suggestions, suggestConcreteTerms)
	}

	if len(suggestions) == 0 {
		return []string{suggestWellStructured}
	}
	return suggestions
}
