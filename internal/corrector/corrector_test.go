package corrector

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/povarna/generative-ai-agents/travel-agent/internal/corrector/mocks"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/detector"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/topics"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func newTestCorrector(generator Generator, timeout time.Duration) *Corrector {
	return NewCorrector(detector.New(topics.Default()), generator, timeout, newTestLogger())
}

// blockingGenerator never answers until the test ends.
func blockingGenerator(t *testing.T) GeneratorFunc {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	return func(ctx context.Context, prompt string) (string, error) {
		<-release
		return "Meow 😺! Welcome to Pune! Pune, Pune, Pune.", nil
	}
}

func TestCorrector_Correct_Unchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGen := mocks.NewMockGenerator(ctrl)
	c := newTestCorrector(mockGen, time.Second)

	text := "Pune is lovely in winter. Pune has great misal. Everyone should see Pune once."
	attempt := c.Correct(context.Background(), text, "Pune")

	if attempt.State != StateUnchanged {
		t.Errorf("expected state %s, got %s", StateUnchanged, attempt.State)
	}
	if !attempt.Succeeded {
		t.Error("expected Succeeded to be true")
	}
	if attempt.Text() != text {
		t.Errorf("expected text unchanged, got %q", attempt.Text())
	}
	if attempt.CorrectedText != "" {
		t.Errorf("expected no corrected text, got %q", attempt.CorrectedText)
	}
}

func TestCorrector_Correct_EmptyExpectedTopic(t *testing.T) {
	c := newTestCorrector(nil, time.Second)

	text := "Visit Sitabardi and Futala Lake."
	attempt := c.Correct(context.Background(), text, "  ")

	if attempt.State != StateUnchanged || !attempt.Succeeded {
		t.Errorf("expected unchanged success, got state=%s succeeded=%v", attempt.State, attempt.Succeeded)
	}
	if attempt.Text() != text {
		t.Errorf("expected text unchanged, got %q", attempt.Text())
	}
}

func TestCorrector_Correct_SingleMentionAddsGreeting(t *testing.T) {
	c := newTestCorrector(nil, time.Second)

	text := "Pune has pleasant weather from October to February."
	attempt := c.Correct(context.Background(), text, "pune")

	if attempt.State != StatePrefixed {
		t.Fatalf("expected state %s, got %s", StatePrefixed, attempt.State)
	}

	want := "Meow 😺! Welcome to Pune! " + text
	if attempt.Text() != want {
		t.Errorf("expected %q, got %q", want, attempt.Text())
	}
	if !attempt.Succeeded {
		t.Error("expected Succeeded to be true")
	}
}

func TestCorrector_Correct_NoMentionAddsIntro(t *testing.T) {
	c := newTestCorrector(nil, time.Second)

	text := "The city has friendly people and plenty of street food."
	attempt := c.Correct(context.Background(), text, "jaipur")

	if attempt.State != StatePrefixed {
		t.Fatalf("expected state %s, got %s", StatePrefixed, attempt.State)
	}
	if !strings.HasPrefix(attempt.Text(), "Meow 😺! Welcome to Jaipur! Let me provide you with information about Jaipur.\n\n") {
		t.Errorf("expected intro greeting, got %q", attempt.Text())
	}
	if !strings.HasSuffix(attempt.Text(), text) {
		t.Errorf("expected body preserved, got %q", attempt.Text())
	}
}

func TestCorrector_Correct_Idempotent(t *testing.T) {
	c := newTestCorrector(nil, time.Second)

	tests := []struct {
		name string
		text string
	}{
		{"single mention", "Pune has pleasant weather from October to February."},
		{"no mention", "The city has friendly people and plenty of street food."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := c.Correct(context.Background(), tt.text, "pune")
			if first.State != StatePrefixed {
				t.Fatalf("expected first pass to prefix, got %s", first.State)
			}

			second := c.Correct(context.Background(), first.Text(), "pune")
			if second.State != StateUnchanged {
				t.Errorf("expected second pass unchanged, got %s", second.State)
			}
			if strings.Count(second.Text(), "Meow") != 1 {
				t.Errorf("expected exactly one greeting, got %q", second.Text())
			}
		})
	}
}

func TestCorrector_Correct_RegenerationAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGen := mocks.NewMockGenerator(ctrl)
	regenerated := "Meow 😺! Welcome to Pune! Start at Shaniwar Wada, then eat misal pav in Pune."

	var prompt string
	mockGen.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p string) (string, error) {
			prompt = p
			return regenerated, nil
		})

	c := newTestCorrector(mockGen, time.Second)
	original := "Nagpur is best seen from Sitabardi Fort. Relax by Futala Lake in the evening."
	attempt := c.Correct(context.Background(), original, "pune")

	if attempt.State != StateRegenerated {
		t.Fatalf("expected state %s, got %s", StateRegenerated, attempt.State)
	}
	if attempt.ForeignTopic != "nagpur" {
		t.Errorf("expected foreign topic nagpur, got %q", attempt.ForeignTopic)
	}
	if attempt.Text() != regenerated {
		t.Errorf("expected regenerated text, got %q", attempt.Text())
	}
	if !attempt.Succeeded {
		t.Error("expected Succeeded to be true")
	}

	for _, want := range []string{`"Nagpur"`, `"Pune"`, "sitabardi", "Welcome to Pune!"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("expected correction prompt to contain %q", want)
		}
	}
}

func TestCorrector_Correct_RegenerationStillForeign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGen := mocks.NewMockGenerator(ctrl)
	mockGen.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return("Nagpur again: Deekshabhoomi and Ambazari Lake.", nil).
		Times(1)

	c := newTestCorrector(mockGen, time.Second)
	original := "Visit Sitabardi and Futala Lake in Nagpur."
	attempt := c.Correct(context.Background(), original, "pune")

	if attempt.State != StateSubstituted {
		t.Fatalf("expected state %s, got %s", StateSubstituted, attempt.State)
	}

	want := "Meow 😺! Welcome to Pune! Visit Sitabardi and Futala Lake in Pune."
	if attempt.Text() != want {
		t.Errorf("expected %q, got %q", want, attempt.Text())
	}
	// markers are never rewritten, so the text still reads as Nagpur
	if attempt.Succeeded {
		t.Error("expected Succeeded to be false")
	}
}

func TestCorrector_Correct_RegenerationMissingExpected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGen := mocks.NewMockGenerator(ctrl)
	mockGen.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return("This city has wonderful food and history.", nil)

	c := newTestCorrector(mockGen, time.Second)
	attempt := c.Correct(context.Background(), "Mumbai is great. Mumbai has beaches. Mumbai never sleeps.", "pune")

	if attempt.State != StateSubstituted {
		t.Fatalf("expected state %s, got %s", StateSubstituted, attempt.State)
	}

	want := "Meow 😺! Welcome to Pune! Pune is great. Pune has beaches. Pune never sleeps."
	if attempt.Text() != want {
		t.Errorf("expected %q, got %q", want, attempt.Text())
	}
	if !attempt.Succeeded {
		t.Error("expected Succeeded to be true after alias substitution")
	}
}

func TestCorrector_Correct_GeneratorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGen := mocks.NewMockGenerator(ctrl)
	mockGen.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return("", errors.New("throttled"))

	c := newTestCorrector(mockGen, time.Second)
	attempt := c.Correct(context.Background(), "Bombay trip: Bombay food, Bombay trains.", "delhi")

	if attempt.State != StateSubstituted {
		t.Fatalf("expected state %s, got %s", StateSubstituted, attempt.State)
	}
	if attempt.Text() != "Meow 😺! Welcome to Delhi! Delhi trip: Delhi food, Delhi trains." {
		t.Errorf("unexpected text %q", attempt.Text())
	}
}

func TestCorrector_Correct_GeneratorPanics(t *testing.T) {
	gen := GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		panic("boom")
	})

	c := newTestCorrector(gen, time.Second)
	attempt := c.Correct(context.Background(), "Visit Sitabardi and Futala Lake in Nagpur.", "pune")

	if attempt.State != StateSubstituted {
		t.Errorf("expected state %s, got %s", StateSubstituted, attempt.State)
	}
}

func TestCorrector_Correct_RegenerationTimeout(t *testing.T) {
	c := newTestCorrector(blockingGenerator(t), 20*time.Millisecond)

	start := time.Now()
	attempt := c.Correct(context.Background(), "Visit Sitabardi and Futala Lake in Nagpur.", "pune")

	if attempt.State != StateSubstituted {
		t.Errorf("expected state %s, got %s", StateSubstituted, attempt.State)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("expected regeneration to be abandoned quickly, took %v", elapsed)
	}
}

func TestCorrector_Correct_CallerCancelled(t *testing.T) {
	c := newTestCorrector(blockingGenerator(t), time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempt := c.Correct(ctx, "Visit Sitabardi and Futala Lake in Nagpur.", "pune")

	if attempt.State != StateSubstituted {
		t.Errorf("expected state %s, got %s", StateSubstituted, attempt.State)
	}
}

func TestCorrector_Correct_NilGeneratorFallsBack(t *testing.T) {
	c := newTestCorrector(nil, time.Second)

	attempt := c.Correct(context.Background(), "Visit Sitabardi and Futala Lake in Nagpur.", "pune")

	if attempt.State != StateSubstituted {
		t.Errorf("expected state %s, got %s", StateSubstituted, attempt.State)
	}
}

func TestCorrector_Correct_MarkersKeptAfterSubstitution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGen := mocks.NewMockGenerator(ctrl)
	mockGen.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return("", errors.New("unavailable"))

	c := newTestCorrector(mockGen, time.Second)
	original := "Welcome to Pune! Visit Sitabardi Fort and Deekshabhoomi."
	attempt := c.Correct(context.Background(), original, "pune")

	if attempt.ForeignTopic != "nagpur" {
		t.Fatalf("expected foreign topic nagpur, got %q", attempt.ForeignTopic)
	}
	if attempt.State != StateSubstituted {
		t.Fatalf("expected state %s, got %s", StateSubstituted, attempt.State)
	}
	if !strings.HasPrefix(attempt.Text(), "Welcome to Pune") {
		t.Errorf("expected Welcome to Pune opening, got %q", attempt.Text())
	}
	if !strings.Contains(attempt.Text(), "Sitabardi Fort") || !strings.Contains(attempt.Text(), "Deekshabhoomi") {
		t.Errorf("expected markers to remain, got %q", attempt.Text())
	}
	if attempt.Succeeded {
		t.Error("expected Succeeded to be false")
	}
}

func TestSubstitute(t *testing.T) {
	table := topics.Default()

	tests := []struct {
		name     string
		text     string
		foreign  string
		expected string
		want     string
	}{
		{
			name:     "longest alias first",
			text:     "Welcome to New Delhi! New Delhi and Delhi are great.",
			foreign:  "delhi",
			expected: "pune",
			want:     "Welcome to Pune! Pune and Pune are great.",
		},
		{
			name:     "whole word only",
			text:     "Nagpur folks and Nagpurkar families",
			foreign:  "nagpur",
			expected: "pune",
			want:     "Meow 😺! Welcome to Pune! Pune folks and Nagpurkar families",
		},
		{
			name:     "case insensitive",
			text:     "BOMBAY and mumbai",
			foreign:  "mumbai",
			expected: "delhi",
			want:     "Meow 😺! Welcome to Delhi! Delhi and Delhi",
		},
		{
			name:     "multi word expected",
			text:     "Goa beaches",
			foreign:  "goa",
			expected: "new york",
			want:     "Meow 😺! Welcome to New York! New York beaches",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Substitute(table, tt.text, tt.foreign, tt.expected)
			if got != tt.want {
				t.Errorf("Substitute() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHasGreeting(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Meow 😺! Welcome to Pune! Great city.", true},
		{"  meow! welcome to pune", true},
		{"Welcome to Pune! Meow", false},
		{"Meow 😺! Welcome to Mumbai!", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := HasGreeting(tt.text, "pune"); got != tt.want {
			t.Errorf("HasGreeting(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
