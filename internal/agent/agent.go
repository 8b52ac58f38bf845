package agent

import (
	"context"
	"fmt"

	"github.com/povarna/generative-ai-agents/travel-agent/internal/llm"
	"github.com/rs/zerolog"
)

const (
	DefaultMaxTokens   = 2000
	DefaultTemperature = 0.3
)

// TravelAgent is Tom, the talking cat. It wraps an LLM client with Tom's
// system prompt and generation settings.
type TravelAgent struct {
	client      llm.LLMClient
	maxTokens   int
	temperature float64
	logger      *zerolog.Logger
}

func NewTravelAgent(client llm.LLMClient, maxTokens int, temperature float64, logger *zerolog.Logger) *TravelAgent {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	if temperature < 0 || temperature > 1 {
		temperature = DefaultTemperature
	}

	return &TravelAgent{
		client:      client,
		maxTokens:   maxTokens,
		temperature: temperature,
		logger:      logger,
	}
}

// Invoke sends input to the model and returns Tom's answer.
func (a *TravelAgent) Invoke(ctx context.Context, input string) (string, error) {
	response, err := a.client.InvokeModelWithRetry(ctx, llm.LLMRequest{
		System:      systemPrompt,
		Prompt:      input,
		MaxTokens:   a.maxTokens,
		Temperature: a.temperature,
	})
	if err != nil {
		a.logger.Error().Err(err).Msg("Failed to invoke travel agent")
		return "", fmt.Errorf("travel agent invocation failed: %w", err)
	}

	a.logger.Debug().
		Str("stop_reason", response.StopReason).
		Int("length", len(response.Content)).
		Msg("Travel agent responded")

	return response.Content, nil
}

// Generate lets the corrector ask Tom for a corrected answer.
func (a *TravelAgent) Generate(ctx context.Context, prompt string) (string, error) {
	return a.Invoke(ctx, prompt)
}
