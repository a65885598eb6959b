package analyzer

import (
	"math"
	"strings"
	"testing"

	"github.com/jonathan-long-lin/prompt-analyzer/internal/domain"
)

func TestScoreReadability_ZeroInput(t *testing.T) {
	score, level := ScoreReadability(domain.TextMetrics{})
	assertFloatNear(t, "score", 100, score)
	assertEqual(t, "level", domain.ComplexityVeryEasy, level)
}

func TestScoreReadability_SimpleText(t *testing.T) {
	// "Hello world.": 2 words, 1 sentence, syllables hello=2 world=1.
	// 206.835 - 1.015*2 - 84.6*1.5 = 77.905
	m := ComputeTextMetrics("Hello world.")
	score, level := ScoreReadability(m)
	assertFloatNear(t, "score", 77.905, score)
	assertEqual(t, "level", domain.ComplexityEasy, level)
}

func TestScoreReadability_AlwaysInRange(t *testing.T) {
	prompts := []string{
		"",
		"Hi.",
		"The cat sat.",
		strings.Repeat("incomprehensibility ", 50) + ".",
		strings.Repeat("a ", 500) + ".",
		"Extraordinarily sophisticated terminological considerations necessitate comprehensive organizational restructuring.",
	}

	for _, p := range prompts {
		score, _ := ScoreReadability(ComputeTextMetrics(p))
		if score < 0 || score > 100 {
			t.Errorf("prompt %q: score %f outside [0,100]", p, score)
		}
	}
}

func TestComplexityFor_TierBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		level domain.ComplexityLevel
	}{
		{100, domain.ComplexityVeryEasy},
		{90, domain.ComplexityVeryEasy},
		{89.99, domain.ComplexityEasy},
		{70, domain.ComplexityEasy},
		{69.99, domain.ComplexityModerate},
		{50, domain.ComplexityModerate},
		{49.99, domain.ComplexityDifficult},
		{30, domain.ComplexityDifficult},
		{29.99, domain.ComplexityVeryDifficult},
		{0, domain.ComplexityVeryDifficult},
	}

	for _, tt := range tests {
		if got := complexityFor(tt.score); got != tt.level {
			t.Errorf("complexityFor(%v): expected %s, got %s", tt.score, tt.level, got)
		}
	}
}

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word      string
		syllables int
	}{
		{"cat", 1},
		{"hello", 2},
		{"world", 1},
		{"make", 1},      // silent e
		{"beautiful", 3}, // eau counts as one group
		{"rhythm", 1},    // y as vowel
		{"strength", 1},
		{"xyzzy", 2},
		{"bcd", 1}, // no vowels still counts one
	}

	for _, tt := range tests {
		if got := countSyllables(tt.word); got != tt.syllables {
			t.Errorf("countSyllables(%q): expected %d, got %d", tt.word, tt.syllables, got)
		}
	}
}

func assertFloatNear(t *testing.T, name string, expected, actual float64) {
	t.Helper()
	if math.Abs(expected-actual) > 0.0001 {
		t.Errorf("%s: expected %.6f, got %.6f", name, expected, actual)
	}
}
