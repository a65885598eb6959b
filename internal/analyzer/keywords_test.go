package analyzer

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	a := New(DefaultLexicon())

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "stop words and short tokens filtered",
			text:     "Go is great and Go is fast",
			expected: []string{"great", "fast"},
		},
		{
			name:     "frequency ranking",
			text:     "apple banana apple cherry banana apple",
			expected: []string{"apple", "banana", "cherry"},
		},
		{
			name:     "ties broken by first occurrence",
			text:     "zebra yak walrus",
			expected: []string{"zebra", "yak", "walrus"},
		},
		{
			name:     "punctuation stripped and lowercased",
			text:     "Hello, WORLD! (hello)",
			expected: []string{"hello", "world"},
		},
		{
			name:     "all stop words yields empty",
			text:     "the and but with this that",
			expected: nil,
		},
		{
			name:     "empty input",
			text:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := strings.Fields(tt.text)
			got := a.ExtractKeywords(words)
			if len(tt.expected) == 0 && len(got) == 0 {
				return
			}
			if !reflect.DeepEqual(tt.expected, got) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestExtractKeywords_CapAndDedup(t *testing.T) {
	a := New(DefaultLexicon())

	terms := []string{
		"zebra", "walrus", "falcon", "badger", "osprey", "marmot",
		"gopher", "weasel", "condor", "beaver", "magpie", "ferret",
	}
	var words []string
	for _, term := range terms {
		// Repeat each term so duplicates must be collapsed
		words = append(words, term, term)
	}

	got := a.ExtractKeywords(words)
	if len(got) != 10 {
		t.Fatalf("expected exactly 10 keywords, got %d", len(got))
	}

	seen := make(map[string]struct{})
	for _, kw := range got {
		if _, dup := seen[kw]; dup {
			t.Errorf("duplicate keyword %q in result", kw)
		}
		seen[kw] = struct{}{}
	}
}

func TestExtractKeywords_CustomStopWords(t *testing.T) {
	a := New(Lexicon{StopWords: []string{"banana"}})

	got := a.ExtractKeywords([]string{"banana", "apple"})
	if !reflect.DeepEqual([]string{"apple"}, got) {
		t.Errorf("expected [apple], got %v", got)
	}
}
