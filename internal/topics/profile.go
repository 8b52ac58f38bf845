package topics

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TopicProfile describes one topic (a city) the travel agent can talk about.
// Aliases are matched as whole words, markers as plain substrings.
type TopicProfile struct {
	Key     string
	Aliases []string
	Markers []string

	aliasPatterns []*regexp.Regexp
}

// MarkerHits counts how many distinct markers of the profile occur in text.
func (p TopicProfile) MarkerHits(text string) int {
	lower := strings.ToLower(text)

	hits := 0
	for _, marker := range p.Markers {
		if strings.Contains(lower, marker) {
			hits++
		}
	}
	return hits
}

// AliasHits counts whole-word occurrences of every alias in text.
// Overlapping aliases ("new delhi" and "delhi") are each counted.
func (p TopicProfile) AliasHits(text string) int {
	patterns := p.aliasPatterns
	if patterns == nil {
		patterns = compileWords(p.Aliases)
	}

	hits := 0
	for _, pattern := range patterns {
		hits += len(pattern.FindAllStringIndex(text, -1))
	}
	return hits
}

// SampleMarkers returns up to n markers in declaration order.
func (p TopicProfile) SampleMarkers(n int) []string {
	if n > len(p.Markers) {
		n = len(p.Markers)
	}
	return append([]string(nil), p.Markers[:n]...)
}

// WordPattern returns a case-insensitive, whole-word pattern for word.
func WordPattern(word string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
}

// CountWord counts case-insensitive whole-word occurrences of word in text.
func CountWord(text string, word string) int {
	if strings.TrimSpace(word) == "" {
		return 0
	}
	return len(WordPattern(word).FindAllStringIndex(text, -1))
}

// DisplayName capitalizes every word of a topic key: "new delhi" -> "New Delhi".
func DisplayName(key string) string {
	words := strings.Fields(strings.ToLower(key))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// Normalize lowercases and trims a topic key.
func Normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

func compileWords(words []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		patterns = append(patterns, WordPattern(w))
	}
	return patterns
}
