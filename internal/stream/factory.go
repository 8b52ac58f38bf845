package stream

import (
	"context"
	"fmt"

	internalredis "github.com/povarna/generative-ai-agents/travel-agent/internal/redis"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/stream/redis"
	"github.com/rs/zerolog"
)

const ProviderRedis = "redis"

type StreamConfig struct {
	Provider    string // redis only for now
	RedisConfig *redis.RedisStreamConfig
	MaxRetries  int
}

func NewStreamConsumer(
	ctx context.Context,
	cfg *StreamConfig,
	chat redis.ChatService,
	logger *zerolog.Logger,
) (StreamConsumer, error) {
	provider := cfg.Provider
	if provider == "" {
		provider = ProviderRedis
	}

	switch provider {
	case ProviderRedis:
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("redis config required")
		}

		retries := cfg.MaxRetries
		if retries == 0 {
			retries = 5
		}

		client, err := internalredis.ConnectRedis(
			ctx,
			cfg.RedisConfig.RedisAddr,
			cfg.RedisConfig.RedisPassword,
			retries,
		)
		if err != nil {
			return nil, err
		}

		return redis.NewConsumer(client, cfg.RedisConfig, chat, logger), nil

	default:
		return nil, fmt.Errorf("unsupported stream provider: %s", provider)
	}
}
