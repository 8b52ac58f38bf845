package topics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/travel-agent/internal/config"
)

var (
	ErrOverlappingMarkers = errors.New("marker shared by more than one topic")
	ErrDuplicateTopic     = errors.New("duplicate topic key")
	ErrEmptyTopicKey      = errors.New("topic key is empty")
)

// Table is the read-only topic landmark table. Iteration order is the order
// the profiles were declared in, which is also the detection tie-break.
type Table struct {
	profiles []TopicProfile
	index    map[string]int
}

// NewTable normalizes the given profiles and builds a table. Markers must be
// disjoint across profiles; a shared marker makes detection ambiguous and is
// rejected with ErrOverlappingMarkers.
func NewTable(profiles []TopicProfile) (*Table, error) {
	table := &Table{
		profiles: make([]TopicProfile, 0, len(profiles)),
		index:    make(map[string]int, len(profiles)),
	}

	markerOwner := make(map[string]string)
	for _, p := range profiles {
		profile := normalizeProfile(p)
		if profile.Key == "" {
			return nil, ErrEmptyTopicKey
		}
		if _, exists := table.index[profile.Key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTopic, profile.Key)
		}

		for _, marker := range profile.Markers {
			if owner, taken := markerOwner[marker]; taken {
				return nil, fmt.Errorf("%w: %q in %s and %s", ErrOverlappingMarkers, marker, owner, profile.Key)
			}
			markerOwner[marker] = profile.Key
		}

		profile.aliasPatterns = compileWords(profile.Aliases)
		table.index[profile.Key] = len(table.profiles)
		table.profiles = append(table.profiles, profile)
	}

	return table, nil
}

// FromConfig builds a table from a loaded YAML topics config.
func FromConfig(cfg *config.TopicsConfig) (*Table, error) {
	if cfg == nil {
		return nil, fmt.Errorf("topics config is nil")
	}

	profiles := make([]TopicProfile, 0, len(cfg.Topics))
	for _, topic := range cfg.Topics {
		profiles = append(profiles, TopicProfile{
			Key:     topic.Key,
			Aliases: topic.Aliases,
			Markers: topic.Markers,
		})
	}

	return NewTable(profiles)
}

// Profiles returns the profiles in declaration order.
func (t *Table) Profiles() []TopicProfile {
	return append([]TopicProfile(nil), t.profiles...)
}

// Get returns the profile registered under key.
func (t *Table) Get(key string) (TopicProfile, bool) {
	i, ok := t.index[Normalize(key)]
	if !ok {
		return TopicProfile{}, false
	}
	return t.profiles[i], true
}

// Lookup resolves a name to a profile by key first, then by alias.
func (t *Table) Lookup(name string) (TopicProfile, bool) {
	name = Normalize(name)
	if p, ok := t.Get(name); ok {
		return p, true
	}

	for _, p := range t.profiles {
		for _, alias := range p.Aliases {
			if alias == name {
				return p, true
			}
		}
	}
	return TopicProfile{}, false
}

// ByMarker returns the profile owning a marker found in text, if any.
func (t *Table) ByMarker(text string) (TopicProfile, bool) {
	lower := strings.ToLower(text)
	for _, p := range t.profiles {
		for _, marker := range p.Markers {
			if strings.Contains(lower, marker) {
				return p, true
			}
		}
	}
	return TopicProfile{}, false
}

// Len returns the number of profiles.
func (t *Table) Len() int {
	return len(t.profiles)
}

func normalizeProfile(p TopicProfile) TopicProfile {
	key := Normalize(p.Key)

	aliases := []string{key}
	seen := map[string]bool{key: true}
	for _, alias := range p.Aliases {
		alias = Normalize(alias)
		if alias == "" || seen[alias] {
			continue
		}
		seen[alias] = true
		aliases = append(aliases, alias)
	}

	markers := make([]string, 0, len(p.Markers))
	seenMarker := make(map[string]bool, len(p.Markers))
	for _, marker := range p.Markers {
		marker = Normalize(marker)
		if marker == "" || seenMarker[marker] {
			continue
		}
		seenMarker[marker] = true
		markers = append(markers, marker)
	}

	return TopicProfile{
		Key:     key,
		Aliases: aliases,
		Markers: markers,
	}
}
