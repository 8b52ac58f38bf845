package travel

import (
	"context"
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/travel-agent/internal/corrector"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/topics"
	"github.com/rs/zerolog"
)

const emptyAgentResponse = "Sorry, I could not generate a response."

// Agent answers a prompt. TravelAgent is the production implementation.
type Agent interface {
	Invoke(ctx context.Context, input string) (string, error)
}

type Service struct {
	agent     Agent
	corrector *corrector.Corrector
	table     *topics.Table
	logger    *zerolog.Logger
}

func NewService(agent Agent, corrector *corrector.Corrector, table *topics.Table, logger *zerolog.Logger) *Service {
	return &Service{
		agent:     agent,
		corrector: corrector,
		table:     table,
		logger:    logger,
	}
}

// Chat answers one traveller question. Only request validation and agent
// failures are returned as errors; off-topic answers are corrected.
func (s *Service) Chat(ctx context.Context, req ChatRequest) (ChatResult, error) {
	if err := req.Validate(); err != nil {
		return ChatResult{}, err
	}

	message := strings.TrimSpace(req.Message)
	city := ResolveCity(s.table, req)

	var topic string
	if city != "" {
		topic = TopicFor(s.table, city)
	}

	s.logger.Info().
		Str("city", city).
		Str("topic", topic).
		Int("message_length", len(message)).
		Msg("Chat request received")

	prompt, err := BuildPrompt(city, topic, message)
	if err != nil {
		return ChatResult{}, err
	}

	answer, err := s.agent.Invoke(ctx, prompt)
	if err != nil {
		return ChatResult{}, fmt.Errorf("failed to invoke travel agent: %w", err)
	}
	if strings.TrimSpace(answer) == "" {
		answer = emptyAgentResponse
	}

	result := ChatResult{
		Response: answer,
		City:     city,
		Topic:    topic,
		State:    string(corrector.StateUnchanged),
	}

	if topic == "" {
		return result, nil
	}

	attempt := s.corrector.Correct(ctx, answer, topic)
	result.Response = attempt.Text()
	result.State = string(attempt.State)

	if !attempt.Succeeded {
		s.logger.Warn().
			Str("topic", topic).
			Str("foreign", attempt.ForeignTopic).
			Str("state", string(attempt.State)).
			Msg("Answer still mentions another city after correction")
	}

	return result, nil
}
