package topics

import (
	"errors"
	"testing"

	"github.com/povarna/generative-ai-agents/travel-agent/internal/config"
)

func TestDefaultTable_IsDisjoint(t *testing.T) {
	table, err := NewTable(DefaultProfiles())
	if err != nil {
		t.Fatalf("default table rejected: %v", err)
	}

	if table.Len() != 16 {
		t.Errorf("Expected 16 profiles, got %d", table.Len())
	}
}

func TestNewTable_RejectsSharedMarker(t *testing.T) {
	_, err := NewTable([]TopicProfile{
		{Key: "pune", Markers: []string{"misal pav", "vada pav"}},
		{Key: "mumbai", Markers: []string{"Vada Pav", "pav bhaji"}},
	})

	if !errors.Is(err, ErrOverlappingMarkers) {
		t.Fatalf("Expected ErrOverlappingMarkers, got %v", err)
	}
}

func TestNewTable_RejectsDuplicateKey(t *testing.T) {
	_, err := NewTable([]TopicProfile{
		{Key: "Pune"},
		{Key: " pune "},
	})

	if !errors.Is(err, ErrDuplicateTopic) {
		t.Fatalf("Expected ErrDuplicateTopic, got %v", err)
	}
}

func TestNewTable_RejectsEmptyKey(t *testing.T) {
	_, err := NewTable([]TopicProfile{{Key: "  "}})
	if !errors.Is(err, ErrEmptyTopicKey) {
		t.Fatalf("Expected ErrEmptyTopicKey, got %v", err)
	}
}

func TestNewTable_NormalizesProfiles(t *testing.T) {
	table, err := NewTable([]TopicProfile{
		{Key: " Mumbai ", Aliases: []string{"BOMBAY", "mumbai", ""}, Markers: []string{"Marine Drive", "marine drive"}},
	})
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	p, ok := table.Get("MUMBAI")
	if !ok {
		t.Fatal("Expected mumbai profile")
	}
	if p.Key != "mumbai" {
		t.Errorf("Key: %q, want mumbai", p.Key)
	}
	if len(p.Aliases) != 2 || p.Aliases[0] != "mumbai" || p.Aliases[1] != "bombay" {
		t.Errorf("Aliases: %v, want [mumbai bombay]", p.Aliases)
	}
	if len(p.Markers) != 1 || p.Markers[0] != "marine drive" {
		t.Errorf("Markers: %v, want [marine drive]", p.Markers)
	}
}

func TestTable_Lookup(t *testing.T) {
	table := Default()

	tests := []struct {
		name    string
		input   string
		wantKey string
		wantOK  bool
	}{
		{name: "by key", input: "Pune", wantKey: "pune", wantOK: true},
		{name: "by alias", input: "Bombay", wantKey: "mumbai", wantOK: true},
		{name: "multi word alias", input: "new delhi", wantKey: "delhi", wantOK: true},
		{name: "unknown", input: "Shimla", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := table.Lookup(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ok: %v, want %v", ok, tt.wantOK)
			}
			if ok && p.Key != tt.wantKey {
				t.Errorf("Key: %q, want %q", p.Key, tt.wantKey)
			}
		})
	}
}

func TestTable_ProfilesKeepDeclarationOrder(t *testing.T) {
	profiles := Default().Profiles()
	want := []string{"nagpur", "pune", "delhi", "mumbai", "jaipur", "bangalore"}

	for i, key := range want {
		if profiles[i].Key != key {
			t.Errorf("profile %d: %q, want %q", i, profiles[i].Key, key)
		}
	}
}

func TestTable_ByMarker(t *testing.T) {
	table := Default()

	p, ok := table.ByMarker("We strolled along Marine Drive at sunset")
	if !ok || p.Key != "mumbai" {
		t.Errorf("Expected mumbai, got %q (ok=%v)", p.Key, ok)
	}

	if _, ok := table.ByMarker("nothing to see here"); ok {
		t.Error("Expected no marker match")
	}
}

func TestTopicProfile_Hits(t *testing.T) {
	nagpur, _ := Default().Get("nagpur")
	delhi, _ := Default().Get("delhi")

	if got := nagpur.MarkerHits("Visit SITABARDI Fort and Deekshabhoomi."); got != 2 {
		t.Errorf("MarkerHits: %d, want 2", got)
	}

	// "new delhi" and "delhi" both match inside "New Delhi".
	if got := delhi.AliasHits("New Delhi is not the same as Delhiwala street. Delhi!"); got != 3 {
		t.Errorf("AliasHits: %d, want 3", got)
	}
}

func TestCountWord(t *testing.T) {
	tests := []struct {
		text string
		word string
		want int
	}{
		{text: "Pune, pune and PUNE", word: "pune", want: 3},
		{text: "Punekar food is great", word: "pune", want: 0},
		{text: "anything", word: "", want: 0},
		{text: "a.b c", word: "a.b", want: 1},
	}

	for _, tt := range tests {
		if got := CountWord(tt.text, tt.word); got != tt.want {
			t.Errorf("CountWord(%q, %q) = %d, want %d", tt.text, tt.word, got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"pune":       "Pune",
		"NEW DELHI":  "New Delhi",
		"  jaipur  ": "Jaipur",
		"":           "",
	}

	for in, want := range tests {
		if got := DisplayName(in); got != want {
			t.Errorf("DisplayName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSampleMarkers(t *testing.T) {
	p := TopicProfile{Markers: []string{"a", "b"}}

	if got := p.SampleMarkers(3); len(got) != 2 {
		t.Errorf("Expected 2 markers, got %v", got)
	}
	if got := p.SampleMarkers(1); len(got) != 1 || got[0] != "a" {
		t.Errorf("Expected [a], got %v", got)
	}
}

func TestFromConfig_MatchesDefault(t *testing.T) {
	cfg, err := config.LoadTopicsConfigFile("../../configs/topics.yaml")
	if err != nil {
		t.Fatalf("LoadTopicsConfigFile failed: %v", err)
	}

	table, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig failed: %v", err)
	}

	defaults := Default().Profiles()
	loaded := table.Profiles()
	if len(loaded) != len(defaults) {
		t.Fatalf("Expected %d profiles, got %d", len(defaults), len(loaded))
	}

	for i := range defaults {
		if loaded[i].Key != defaults[i].Key {
			t.Errorf("profile %d: key %q, want %q", i, loaded[i].Key, defaults[i].Key)
		}
		if len(loaded[i].Markers) != len(defaults[i].Markers) {
			t.Errorf("profile %s: %d markers, want %d", defaults[i].Key, len(loaded[i].Markers), len(defaults[i].Markers))
		}
		if len(loaded[i].Aliases) != len(defaults[i].Aliases) {
			t.Errorf("profile %s: aliases %v, want %v", defaults[i].Key, loaded[i].Aliases, defaults[i].Aliases)
		}
	}
}

func TestFromConfig_Nil(t *testing.T) {
	if _, err := FromConfig(nil); err == nil {
		t.Error("Expected error for nil config")
	}
}
