package travel

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/povarna/generative-ai-agents/travel-agent/internal/topics"
)

const (
	minCityLength = 3
	maxCityLength = 29
)

// cityPatterns pull a capitalized place name out of free text, tried in order.
// The first one can run past the city ("Pune During Diwali"); matchPlace
// trims the capture back to a name the table knows.
var cityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:about|in|for|to)\s+([A-Z][a-zA-Z]*(?:\s+[A-Z][a-zA-Z]*)*)`),
	regexp.MustCompile(`(?:tell me|information|details).*?\b([A-Z][a-zA-Z]{2,20})\b`),
}

// ExtractCity finds the city a message asks about, or "" if there is none.
func ExtractCity(table *topics.Table, message string) string {
	for _, pattern := range cityPatterns {
		match := pattern.FindStringSubmatch(message)
		if len(match) < 2 {
			continue
		}

		name, _, _ := matchPlace(table, match[1])
		if len(name) >= minCityLength && len(name) <= maxCityLength {
			return name
		}
	}
	return ""
}

// ResolveCity returns the explicit city when given, else the one extracted
// from the message.
func ResolveCity(table *topics.Table, req ChatRequest) string {
	if city := strings.TrimSpace(req.City); city != "" {
		return city
	}
	return ExtractCity(table, req.Message)
}

// TopicFor maps a city name to its key in the table, so "New Delhi",
// "Bombay" and "Pune, India" are checked as delhi, mumbai and pune. An
// unknown city is keyed by its first word.
func TopicFor(table *topics.Table, city string) string {
	name, profile, ok := matchPlace(table, city)
	if ok {
		return profile.Key
	}
	return topics.Normalize(name)
}

// matchPlace returns the longest run of leading words in text that names a
// topic in table. Without a match it returns the first word.
func matchPlace(table *topics.Table, text string) (string, topics.TopicProfile, bool) {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	if len(words) == 0 {
		return "", topics.TopicProfile{}, false
	}

	if table != nil {
		for n := len(words); n > 0; n-- {
			name := strings.Join(words[:n], " ")
			if profile, ok := table.Lookup(name); ok {
				return name, profile, true
			}
		}
	}
	return words[0], topics.TopicProfile{}, false
}
