package analyzer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan-long-lin/prompt-analyzer/internal/domain"
)

var blankLineRe = regexp.MustCompile(`\n[ \t\r]*\n`)

// ComputeTextMetrics tokenizes a prompt and computes its size counts.
// It never fails: an empty or whitespace-only string yields zero counts.
func ComputeTextMetrics(text string) domain.TextMetrics {
	m := domain.TextMetrics{
		CharacterCount: utf8.RuneCountInString(text),
	}

	m.Words = strings.Fields(text)
	m.WordCount = len(m.Words)

	for _, seg := range strings.FieldsFunc(text, isSentenceTerminator) {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		m.Sentences = append(m.Sentences, strings.TrimSpace(seg))
	}
	m.SentenceCount = len(m.Sentences)

	for _, para := range blankLineRe.Split(text, -1) {
		if strings.TrimSpace(para) != "" {
			m.ParagraphCount++
		}
	}

	return m
}

func isSentenceTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
