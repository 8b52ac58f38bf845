package travel

import (
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/travel-agent/internal/topics"
)

func TestExtractCity(t *testing.T) {
	table := topics.Default()

	tests := []struct {
		message string
		want    string
	}{
		{"Tell me about Pune", "Pune"},
		{"What should I eat in New Delhi?", "New Delhi"},
		{"Plan a weekend trip to Goa, please", "Goa"},
		{"I want to go to Mumbai and relax", "Mumbai"},
		{"Give me details on Jaipur food", "Jaipur"},
		{"hello there", ""},
		{"tell me about pune", ""},
		{"Let's talk about Ab", ""},
		{"Tell me about Pune I love food", "Pune"},
		{"Things to do in Pune During Diwali", "Pune"},
		{"Hotels in New Delhi Near The Station", "New Delhi"},
		{"Trip to Bombay Next Week", "Bombay"},
		{"Weekend in Shimla With Friends", "Shimla"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			if got := ExtractCity(table, tt.message); got != tt.want {
				t.Errorf("ExtractCity(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestResolveCity_ExplicitWins(t *testing.T) {
	got := ResolveCity(topics.Default(), ChatRequest{Message: "Tell me about Pune", City: "  Nagpur "})
	if got != "Nagpur" {
		t.Errorf("expected explicit city Nagpur, got %q", got)
	}
}

func TestTopicFor(t *testing.T) {
	table := topics.Default()

	tests := []struct {
		city string
		want string
	}{
		{"Pune", "pune"},
		{"New Delhi", "delhi"},
		{"Bombay", "mumbai"},
		{"Shimla", "shimla"},
		{"Pune, India", "pune"},
		{"pune city", "pune"},
		{"New Delhi, India", "delhi"},
		{"Shimla, Himachal Pradesh", "shimla"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := TopicFor(table, tt.city); got != tt.want {
			t.Errorf("TopicFor(%q) = %q, want %q", tt.city, got, tt.want)
		}
	}
}

func TestResolveCity_FromMessage(t *testing.T) {
	got := ResolveCity(topics.Default(), ChatRequest{Message: "What to eat in Mumbai This Monsoon"})
	if got != "Mumbai" {
		t.Errorf("expected Mumbai, got %q", got)
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt, err := BuildPrompt("Nagpur", "nagpur", "Where should I eat?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"travel information about Nagpur, India",
		"Sitabardi Fort, Deekshabhoomi",
		"The traveller asked: Where should I eat?",
		`Start with "Meow 😺! Welcome to Nagpur!"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("expected prompt to contain %q", want)
		}
	}

	unknown, err := BuildPrompt("Shimla", "shimla", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(unknown, fallbackExamples) {
		t.Error("expected fallback examples for an unknown city")
	}
	if strings.Contains(unknown, "The traveller asked") {
		t.Error("expected no question section for an empty message")
	}

	passthrough, _ := BuildPrompt("", "", "Best beaches?")
	if passthrough != "Best beaches?" {
		t.Errorf("expected message passthrough, got %q", passthrough)
	}

	empty, _ := BuildPrompt("", "", "")
	if empty != defaultQuestion {
		t.Errorf("expected default question, got %q", empty)
	}
}
