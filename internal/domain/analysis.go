package domain

// ComplexityLevel is the discretized tier derived from the readability score.
type ComplexityLevel string

const (
	ComplexityVeryEasy      ComplexityLevel = "Very Easy"
	ComplexityEasy          ComplexityLevel = "Easy"
	ComplexityModerate      ComplexityLevel = "Moderate"
	ComplexityDifficult     ComplexityLevel = "Difficult"
	ComplexityVeryDifficult ComplexityLevel = "Very Difficult"
)

// Sentiment is the lexicon-based polarity of a prompt.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// TextMetrics holds the size counts and tokenization of a single prompt.
type TextMetrics struct {
	WordCount      int
	CharacterCount int
	SentenceCount  int
	ParagraphCount int
	Words          []string
	Sentences      []string
}

// AnalysisResult is the full linguistic analysis of one prompt.
// Built fresh per analysis call and never mutated afterwards.
type AnalysisResult struct {
	WordCount        int             `json:"word_count"`
	CharacterCount   int             `json:"character_count"`
	SentenceCount    int             `json:"sentence_count"`
	ParagraphCount   int             `json:"paragraph_count"`
	ReadabilityScore float64         `json:"readability_score"`
	ComplexityLevel  ComplexityLevel `json:"complexity_level"`
	Keywords         []string        `json:"keywords"`
	Sentiment        Sentiment       `json:"sentiment"`
	Suggestions      []string        `json:"suggestions"`
}
