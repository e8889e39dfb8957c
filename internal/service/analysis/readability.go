// internal/service/analysis/readability.go

package analysis

import (
	"math"
	"strings"
)

// maxKeywordDensity is the ceiling applied to reported keyword density.
// Values above it indicate stuffing, not better optimization.
const maxKeywordDensity = 3.0

// KeywordDensity returns the percentage of whitespace-delimited tokens that
// contain keyword as a substring (case-insensitive), capped at 3.0.
func KeywordDensity(text, keyword string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 || keyword == "" {
		return 0
	}

	target := strings.ToLower(keyword)
	count := 0
	for _, word := range words {
		if strings.Contains(strings.ToLower(word), target) {
			count++
		}
	}

	density := float64(count) / float64(len(words)) * 100
	return math.Min(density, maxKeywordDensity)
}

// ReadabilityScore estimates how easy text is to read on a 0-100 scale,
// derived from an approximate Flesch-Kincaid grade level. Lower grade
// levels score higher. Empty text scores 0.
func ReadabilityScore(text string) float64 {
	sentences := countSentences(text)
	words := strings.Fields(text)

	if sentences == 0 || len(words) == 0 {
		return 0
	}

	syllables := 0
	for _, word := range words {
		syllables += countSyllables(word)
	}

	grade := 0.39*(float64(len(words))/float64(sentences)) +
		11.8*(float64(syllables)/float64(len(words))) - 15.59

	score := 100 - grade*5
	return math.Max(0, math.Min(100, score))
}

// HasHeadingStructure reports whether the text contains at least two
// second-level Markdown headings.
func HasHeadingStructure(text string) bool {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "## ") {
			count++
		}
	}
	return count >= 2
}

// WordCount returns the number of whitespace-delimited tokens in text
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// countSentences counts non-empty fragments terminated by ., ! or ?
func countSentences(text string) int {
	fragments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	count := 0
	for _, fragment := range fragments {
		if strings.TrimSpace(fragment) != "" {
			count++
		}
	}
	return count
}

// countSyllables approximates syllables as runs of vowel letters,
// with a floor of one per word.
func countSyllables(word string) int {
	word = strings.ToLower(word)

	count := 0
	inVowelRun := false
	for _, r := range word {
		if isVowel(r) {
			if !inVowelRun {
				count++
				inVowelRun = true
			}
		} else {
			inVowelRun = false
		}
	}

	if count == 0 {
		return 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
