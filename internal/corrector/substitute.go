package corrector

import (
	"sort"

	"github.com/povarna/generative-ai-agents/travel-agent/internal/topics"
)

// Substitute replaces whole-word mentions of the foreign topic and its
// aliases with the display name of the expected topic, then makes sure the
// text welcomes the reader to the expected topic. Markers (landmarks, dishes)
// are left untouched.
func Substitute(table *topics.Table, text string, foreign string, expected string) string {
	foreign = topics.Normalize(foreign)
	expected = topics.Normalize(expected)

	names := []string{foreign}
	if profile, ok := table.Get(foreign); ok {
		names = append(names, profile.Aliases...)
	}
	names = uniqueNonEmpty(names)

	// "new delhi" must be replaced before "delhi".
	sort.SliceStable(names, func(i, j int) bool {
		return len(names[i]) > len(names[j])
	})

	replacement := topics.DisplayName(expected)
	corrected := text
	for _, name := range names {
		corrected = topics.WordPattern(name).ReplaceAllLiteralString(corrected, replacement)
	}

	if !mentionsWelcome(corrected, expected) {
		corrected = ShortGreeting(expected) + corrected
	}

	return corrected
}

func uniqueNonEmpty(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
