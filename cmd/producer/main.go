package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	internalredis "github.com/povarna/generative-ai-agents/travel-agent/internal/redis"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/stream/redis"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	_ = godotenv.Load()

	message := flag.String("m", "", "question for the travel agent")
	city := flag.String("city", "", "optional city")
	requestID := flag.String("id", "", "optional request id")
	streamName := flag.String("stream", redis.DefaultRequestStream, "request stream name")
	flag.Parse()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := internalredis.ConnectRedis(ctx, addr, os.Getenv("REDIS_PASSWORD"), 3)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer client.Close()

	producer := redis.NewProducer(client, *streamName)

	msg, id, err := producer.Publish(ctx, redis.ChatMessage{
		RequestID: *requestID,
		Message:   *message,
		City:      *city,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to publish chat request")
	}

	log.Info().
		Str("stream", *streamName).
		Str("id", id).
		Str("request_id", msg.RequestID).
		Msg("Chat request published")
}
