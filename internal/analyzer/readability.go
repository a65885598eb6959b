package analyzer

import (
	"strings"
	"unicode"

	"github.com/jonathan-long-lin/prompt-analyzer/internal/domain"
)

// ScoreReadability computes a Flesch Reading Ease approximation from text
// metrics and maps it onto a complexity tier. The score is always in
// [0,100]. Inputs with no words or no sentences score 100 (trivially easy)
// rather than erroring, so the function is total.
func ScoreReadability(m domain.TextMetrics) (float64, domain.ComplexityLevel) {
	if m.WordCount == 0 || m.SentenceCount == 0 {
		return 100, domain.ComplexityVeryEasy
	}

	avgSentenceLength := float64(m.WordCount) / float64(m.SentenceCount)
	avgSyllables := averageSyllablesPerWord(m.Words)

	score := 206.835 - 1.015*avgSentenceLength - 84.6*avgSyllables
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return score, complexityFor(score)
}

// complexityFor maps a readability score onto its tier. Ties go to the
// higher (easier) band.
func complexityFor(score float64) domain.ComplexityLevel {
	switch {
	case score >= 90:
		return domain.ComplexityVeryEasy
	case score >= 70:
		return domain.ComplexityEasy
	case score >= 50:
		return domain.ComplexityModerate
	case score >= 30:
		return domain.ComplexityDifficult
	default:
		return domain.ComplexityVeryDifficult
	}
}

// averageSyllablesPerWord estimates syllables with a vowel-group count.
// Words reduced to nothing by punctuation stripping contribute zero
// syllables but still count toward the divisor.
func averageSyllablesPerWord(words []string) float64 {
	if len(words) == 0 {
		return 0
	}

	total := 0
	for _, word := range words {
		cleaned := stripNonLetters(strings.ToLower(word))
		if cleaned == "" {
			continue
		}
		total += countSyllables(cleaned)
	}

	return float64(total) / float64(len(words))
}

func countSyllables(word string) int {
	syllables := 0
	inGroup := false
	for _, r := range word {
		if isVowel(r) {
			if !inGroup {
				syllables++
			}
			inGroup = true
		} else {
			inGroup = false
		}
	}

	// Silent trailing e
	if strings.HasSuffix(word, "e") && syllables > 1 {
		syllables--
	}
	if syllables < 1 {
		syllables = 1
	}
	return syllables
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

func stripNonLetters(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
