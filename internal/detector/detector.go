package detector

import (
	"regexp"
	"strings"

	"github.com/povarna/generative-ai-agents/travel-agent/internal/topics"
)

const (
	// MinMarkerHits is the number of distinct markers of another topic that
	// marks a response as being about that topic.
	MinMarkerHits = 2

	// ProminentAliasHits makes a foreign topic win regardless of how often
	// the expected topic is mentioned.
	ProminentAliasHits = 2

	genericMaxLength = 500
)

var specificInfoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[A-Z][a-z]+ (Palace|Fort|Temple|Market|Beach|Park|Museum|Gate|Tower)`),
	regexp.MustCompile(`(?i)\b(Misal|Pav|Bhature|Dosa|Biryani|Kebab|Tikka|Curry|Thali)\b`),
	regexp.MustCompile(`(?i)(Road|Street|Chowk|Bazaar|Market|Nagar)`),
}

// ValidationResult summarizes how well a generated answer sticks to the
// expected topic.
type ValidationResult struct {
	ExpectedTopic        string `json:"expected_topic"`
	DetectedForeignTopic string `json:"detected_foreign_topic,omitempty"`
	ExpectedMentionCount int    `json:"expected_mention_count"`
	IsGeneric            bool   `json:"is_generic"`
}

func (r ValidationResult) HasForeignTopic() bool {
	return r.DetectedForeignTopic != ""
}

// Detector finds answers that talk about a different topic than the one
// requested. It is a best-effort heuristic over the landmark table.
type Detector struct {
	table *topics.Table
}

func New(table *topics.Table) *Detector {
	return &Detector{table: table}
}

func (d *Detector) Table() *topics.Table {
	return d.table
}

// DetectForeignTopic returns the key of the topic the text appears to be
// about instead of expected. Marker evidence is checked first; alias counts
// are the fallback. Ties go to the topic declared first in the table.
func (d *Detector) DetectForeignTopic(text string, expected string) (string, bool) {
	if key, ok := d.ForeignByMarkers(text, expected); ok {
		return key, true
	}
	return d.ForeignByAliases(text, expected)
}

// ForeignByMarkers returns the first other topic with at least MinMarkerHits
// markers present in text.
func (d *Detector) ForeignByMarkers(text string, expected string) (string, bool) {
	expected = topics.Normalize(expected)
	lower := strings.ToLower(text)

	for _, profile := range d.table.Profiles() {
		if profile.Key == expected {
			continue
		}
		if profile.MarkerHits(lower) >= MinMarkerHits {
			return profile.Key, true
		}
	}
	return "", false
}

// ForeignByAliases returns the first other topic whose names appear more
// often than the expected topic, or more than ProminentAliasHits times.
func (d *Detector) ForeignByAliases(text string, expected string) (string, bool) {
	expected = topics.Normalize(expected)
	expectedCount := topics.CountWord(text, expected)

	for _, profile := range d.table.Profiles() {
		if profile.Key == expected {
			continue
		}

		foreignCount := profile.AliasHits(text)
		if foreignCount > 0 && (foreignCount > expectedCount || foreignCount > ProminentAliasHits) {
			return profile.Key, true
		}
	}
	return "", false
}

// Validate runs every check against text and reports the findings.
func (d *Detector) Validate(text string, expected string) ValidationResult {
	expected = topics.Normalize(expected)
	foreign, _ := d.DetectForeignTopic(text, expected)

	return ValidationResult{
		ExpectedTopic:        expected,
		DetectedForeignTopic: foreign,
		ExpectedMentionCount: MentionCount(text, expected),
		IsGeneric:            IsGeneric(text),
	}
}

// MentionCount counts case-insensitive substring occurrences of topic.
func MentionCount(text string, topic string) int {
	topic = topics.Normalize(topic)
	if topic == "" {
		return 0
	}
	return strings.Count(strings.ToLower(text), topic)
}

// IsGeneric reports a short answer with no concrete place, dish or street
// names in it.
func IsGeneric(text string) bool {
	for _, pattern := range specificInfoPatterns {
		if pattern.MatchString(text) {
			return false
		}
	}
	return len(text) < genericMaxLength
}
