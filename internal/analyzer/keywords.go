package analyzer

import (
	"sort"
	"strings"
	"unicode/utf8"
)

const maxKeywords = 10

// ExtractKeywords picks the most salient terms from the tokenized prompt.
// Tokens are lowercased, stripped of punctuation, and filtered against the
// stop-word list and a minimum length of three characters. The result is
// ranked by frequency (descending), with ties broken by first occurrence,
// capped at ten, and free of duplicates.
func (a *Analyzer) ExtractKeywords(words []string) []string {
	freq := make(map[string]int)
	firstSeen := make(map[string]int)

	pos := 0
	for _, word := range words {
		token := stripNonLetters(strings.ToLower(word))
		if utf8.RuneCountInString(token) < 3 {
			continue
		}
		if _, stop := a.stopWords[token]; stop {
			continue
		}
		if _, seen := freq[token]; !seen {
			firstSeen[token] = pos
		}
		freq[token]++
		pos++
	}

	keywords := make([]string, 0, len(freq))
	for token := range freq {
		keywords = append(keywords, token)
	}

	sort.Slice(keywords, func(i, j int) bool {
		if freq[keywords[i]] != freq[keywords[j]] {
			return freq[keywords[i]] > freq[keywords[j]]
		}
		return firstSeen[keywords[i]] < firstSeen[keywords[j]]
	})

	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}
