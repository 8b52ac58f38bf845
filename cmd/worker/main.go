package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/setup/logger"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/stream"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/stream/redis"
)

func main() {
	_ = godotenv.Load()

	cfg := setup.LoadConfig()

	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := setup.Wire(ctx, cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to load dependencies")
	}

	hostname, _ := os.Hostname()

	consumer, err := stream.NewStreamConsumer(ctx, &stream.StreamConfig{
		Provider: os.Getenv("STREAM_PROVIDER"),
		RedisConfig: redis.NewRedisStreamConfig(
			cfg.RedisAddr,
			cfg.RedisPassword,
			os.Getenv("TRAVEL_REQUEST_STREAM"),
			os.Getenv("TRAVEL_RESPONSE_STREAM"),
			os.Getenv("TRAVEL_CONSUMER_GROUP"),
			hostname,
		),
	}, deps.TravelService, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to create stream consumer")
	}

	if err := consumer.Setup(ctx); err != nil {
		log.Fatal().Err(err).Msg("Unable to set up consumer group")
	}

	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("Consumer stopped")
	}

	if err := consumer.Stop(); err != nil {
		log.Error().Err(err).Msg("Consumer shutdown failed")
	}

	log.Info().Msg("Worker stopped")
}
