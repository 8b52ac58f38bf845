package setup

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/povarna/generative-ai-agents/travel-agent/internal/agent"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/config"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/corrector"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/detector"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/llm/gpt"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/llm/remote"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/topics"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/travel"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Table         *topics.Table
	Agent         *agent.TravelAgent
	Corrector     *corrector.Corrector
	TravelService *travel.Service
	Logger        *zerolog.Logger
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	llmClient, err := createLLMClient(ctx, cfg.DefaultProvider, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.DefaultProvider, err)
	}

	return WireWithClient(cfg, llmClient, logger)
}

// WireWithClient builds the travel pipeline around an existing LLM client.
func WireWithClient(cfg *Config, llmClient llm.LLMClient, logger *zerolog.Logger) (*Dependencies, error) {
	table, err := loadTopics(cfg.TopicsConfigPath, logger)
	if err != nil {
		return nil, err
	}

	travelAgent := agent.NewTravelAgent(llmClient, cfg.MaxTokens, cfg.Temperature, logger)

	// The agent doubles as the regeneration function for the corrector.
	validator := corrector.NewCorrector(detector.New(table), travelAgent, cfg.RegenerateTimeout, logger)

	service := travel.NewService(travelAgent, validator, table, logger)

	return &Dependencies{
		Table:         table,
		Agent:         travelAgent,
		Corrector:     validator,
		TravelService: service,
		Logger:        logger,
	}, nil
}

// loadTopics reads the landmark table from YAML. A missing file falls back to
// the built-in table; a malformed one is an error.
func loadTopics(path string, logger *zerolog.Logger) (*topics.Table, error) {
	if path == "" {
		return topics.Default(), nil
	}

	topicsConfig, err := config.LoadTopicsConfigFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn().Str("path", path).Msg("Topics config not found, using built-in table")
			return topics.Default(), nil
		}
		return nil, fmt.Errorf("failed to load topics config: %w", err)
	}

	table, err := topics.FromConfig(topicsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to build topic table: %w", err)
	}

	logger.Info().Int("topics", table.Len()).Str("path", path).Msg("Topic table loaded")
	return table, nil
}

func createLLMClient(ctx context.Context, provider string, cfg *Config) (llm.LLMClient, error) {
	switch provider {
	case llm.ProviderBedrock:
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	case llm.ProviderOpenAI:
		return gpt.NewClient(cfg.OpenAIKey, cfg.OpenAIModelID)
	case llm.ProviderRemote:
		return remote.NewClient(cfg.AgentURL)
	default:
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	}
}
