package corrector

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/povarna/generative-ai-agents/travel-agent/internal/detector"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/topics"
	"github.com/rs/zerolog"
)

const (
	// MinExpectedMentions is how often a good answer names its topic.
	MinExpectedMentions = 3

	DefaultRegenerateTimeout = 30 * time.Second
)

var ErrEmptyGeneration = errors.New("generator returned empty text")

// Corrector checks a generated answer against the expected topic and repairs
// it: one regeneration with a corrective prompt, then mechanical
// substitution, then greeting prefixes. It never returns an error.
type Corrector struct {
	detector          *detector.Detector
	generator         Generator
	prompt            *template.Template
	regenerateTimeout time.Duration
	logger            *zerolog.Logger
}

func NewCorrector(
	detector *detector.Detector,
	generator Generator,
	regenerateTimeout time.Duration,
	logger *zerolog.Logger,
) *Corrector {
	if regenerateTimeout <= 0 {
		regenerateTimeout = DefaultRegenerateTimeout
	}

	return &Corrector{
		detector:          detector,
		generator:         generator,
		prompt:            parseCorrectionPrompt(),
		regenerateTimeout: regenerateTimeout,
		logger:            logger,
	}
}

func (c *Corrector) Correct(ctx context.Context, originalText string, expectedTopic string) CorrectionAttempt {
	expected := topics.Normalize(expectedTopic)

	attempt := CorrectionAttempt{
		OriginalText: originalText,
		State:        StateUnchanged,
	}

	if expected == "" {
		attempt.Succeeded = true
		return attempt
	}

	validation := c.detector.Validate(originalText, expected)
	attempt.Validation = validation

	c.logger.Info().
		Str("expected", expected).
		Str("foreign", validation.DetectedForeignTopic).
		Int("mentions", validation.ExpectedMentionCount).
		Bool("generic", validation.IsGeneric).
		Int("length", len(originalText)).
		Msg("response validated")

	if validation.IsGeneric {
		c.logger.Warn().Str("expected", expected).Msg("response may be too generic")
	}

	switch {
	case validation.HasForeignTopic():
		foreign := validation.DetectedForeignTopic
		attempt.ForeignTopic = foreign

		c.logger.Error().
			Str("expected", expected).
			Str("foreign", foreign).
			Msg("response is about the wrong topic")

		regenerated, err := c.regenerate(ctx, foreign, expected)
		if err != nil {
			c.logger.Warn().
				Err(err).
				Str("expected", expected).
				Str("foreign", foreign).
				Msg("regeneration rejected, using text substitution")

			attempt.CorrectedText = Substitute(c.detector.Table(), originalText, foreign, expected)
			attempt.State = StateSubstituted
			break
		}

		c.logger.Info().Str("expected", expected).Msg("regenerated response accepted")
		attempt.CorrectedText = regenerated
		attempt.State = StateRegenerated

	case validation.ExpectedMentionCount == 0:
		c.logger.Warn().Str("expected", expected).Msg("response does not mention the expected topic")
		attempt.CorrectedText = IntroGreeting(expected) + originalText
		attempt.State = StatePrefixed

	case validation.ExpectedMentionCount < MinExpectedMentions:
		if !HasGreeting(originalText, expected) {
			c.logger.Warn().
				Str("expected", expected).
				Int("mentions", validation.ExpectedMentionCount).
				Msg("expected topic barely mentioned, adding greeting")
			attempt.CorrectedText = ShortGreeting(expected) + originalText
			attempt.State = StatePrefixed
		}
	}

	_, foreignLeft := c.detector.DetectForeignTopic(attempt.Text(), expected)
	attempt.Succeeded = !foreignLeft

	return attempt
}

// regenerate asks the generator once for a new answer and returns it only if
// it passes detection and names the expected topic. The call is bounded by
// the regenerate timeout and abandoned when ctx ends.
func (c *Corrector) regenerate(ctx context.Context, foreign string, expected string) (string, error) {
	if c.generator == nil {
		return "", fmt.Errorf("no generator configured")
	}

	prompt, err := c.buildPrompt(foreign, expected)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.regenerateTimeout)
	defer cancel()

	type generation struct {
		text string
		err  error
	}

	done := make(chan generation, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- generation{err: fmt.Errorf("generator panicked: %v", r)}
			}
		}()

		text, err := c.generator.Generate(ctx, prompt)
		done <- generation{text: text, err: err}
	}()

	var result generation
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("regeneration abandoned: %w", ctx.Err())
	case result = <-done:
	}

	if result.err != nil {
		c.logger.Error().Err(result.err).Str("expected", expected).Msg("failed to generate correction")
		return "", fmt.Errorf("regeneration failed: %w", result.err)
	}

	if strings.TrimSpace(result.text) == "" {
		return "", ErrEmptyGeneration
	}

	if stillForeign, ok := c.detector.DetectForeignTopic(result.text, expected); ok {
		return "", fmt.Errorf("regenerated response still about %s", stillForeign)
	}

	if detector.MentionCount(result.text, expected) == 0 {
		return "", fmt.Errorf("regenerated response does not mention %s", expected)
	}

	return result.text, nil
}
