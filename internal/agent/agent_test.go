package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/povarna/generative-ai-agents/travel-agent/internal/corrector"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/llm/mocks"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

var _ corrector.Generator = (*TravelAgent)(nil)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestTravelAgent_Invoke(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLLM := mocks.NewMockLLMClient(ctrl)
	mockLLM.EXPECT().
		InvokeModelWithRetry(gomock.Any(), llm.LLMRequest{
			System:      systemPrompt,
			Prompt:      "Tell me about Pune",
			MaxTokens:   1000,
			Temperature: 0.3,
		}).
		Return(&llm.LLMResponse{Content: "Meow 😺! Welcome to Pune!", StopReason: "end_turn"}, nil)

	agent := NewTravelAgent(mockLLM, 1000, 0.3, newTestLogger())

	got, err := agent.Invoke(context.Background(), "Tell me about Pune")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Meow 😺! Welcome to Pune!" {
		t.Errorf("unexpected response %q", got)
	}
}

func TestTravelAgent_Generate_PropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLLM := mocks.NewMockLLMClient(ctrl)
	mockLLM.EXPECT().
		InvokeModelWithRetry(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("ThrottlingException"))

	agent := NewTravelAgent(mockLLM, 0, 0.3, newTestLogger())

	if _, err := agent.Generate(context.Background(), "retry about Pune"); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewTravelAgent_Defaults(t *testing.T) {
	agent := NewTravelAgent(nil, 0, 5, newTestLogger())

	if agent.maxTokens != DefaultMaxTokens {
		t.Errorf("expected max tokens %d, got %d", DefaultMaxTokens, agent.maxTokens)
	}
	if agent.temperature != DefaultTemperature {
		t.Errorf("expected temperature %.1f, got %.1f", DefaultTemperature, agent.temperature)
	}
}
