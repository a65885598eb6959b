package analyzer

// Lexicon holds the word lists the analyzer depends on. It is plain
// configuration data so tests and locales can swap it out; the zero value
// is not useful — use DefaultLexicon or load one from config.
type Lexicon struct {
	StopWords     []string
	PositiveWords []string
	NegativeWords []string
}

// DefaultLexicon returns the built-in English word lists.
func DefaultLexicon() Lexicon {
	return Lexicon{
		StopWords: []string{
			"the", "a", "an", "and", "or", "but", "in", "on", "at", "to",
			"for", "of", "with", "by", "is", "are", "was", "were", "be",
			"been", "have", "has", "had", "do", "does", "did", "will",
			"would", "could", "should", "may", "might", "can", "this",
			"that", "these", "those", "i", "you", "he", "she", "it", "we",
			"they", "me", "him", "her", "us", "them", "my", "your", "his",
			"its", "our", "their",
		},
		PositiveWords: []string{
			"good", "great", "excellent", "amazing", "wonderful",
			"fantastic", "awesome", "love", "like", "enjoy", "happy",
			"pleased", "satisfied", "positive", "best", "perfect",
			"outstanding", "brilliant", "superb", "magnificent", "helpful",
		},
		NegativeWords: []string{
			"bad", "terrible", "awful", "horrible", "worst", "hate",
			"dislike", "angry", "sad", "disappointed", "frustrated",
			"annoyed", "negative", "poor", "weak", "failed", "broken",
			"wrong", "error", "problem", "confusing",
		},
	}
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
