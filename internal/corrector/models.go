package corrector

import (
	"context"

	"github.com/povarna/generative-ai-agents/travel-agent/internal/detector"
)

// Generator produces text for a prompt. One call costs real latency and
// money, so the corrector calls it at most once per response.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

type State string

const (
	StateUnchanged   State = "accepted-unchanged"
	StateRegenerated State = "accepted-regenerated"
	StateSubstituted State = "accepted-substituted"
	StatePrefixed    State = "accepted-prefixed"
)

// CorrectionAttempt is the outcome of one Correct call.
type CorrectionAttempt struct {
	OriginalText  string                    `json:"original_text"`
	CorrectedText string                    `json:"corrected_text,omitempty"`
	Succeeded     bool                      `json:"succeeded"`
	State         State                     `json:"state"`
	ForeignTopic  string                    `json:"foreign_topic,omitempty"`
	Validation    detector.ValidationResult `json:"validation"`
}

// Text returns the text that should be shown to the user.
func (a CorrectionAttempt) Text() string {
	if a.State == StateUnchanged {
		return a.OriginalText
	}
	return a.CorrectedText
}
