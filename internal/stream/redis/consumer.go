package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/travel-agent/internal/travel"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// StreamClient is the part of the go-redis client the consumer uses.
type StreamClient interface {
	XGroupCreateMkStream(ctx context.Context, stream, group, start string) *redis.StatusCmd
	XReadGroup(ctx context.Context, a *redis.XReadGroupArgs) *redis.XStreamSliceCmd
	XAck(ctx context.Context, stream, group string, ids ...string) *redis.IntCmd
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// ChatService answers chat requests. travel.Service implements it.
type ChatService interface {
	Chat(ctx context.Context, req travel.ChatRequest) (travel.ChatResult, error)
}

const maxResponseStreamLen = 10000

type Consumer struct {
	client         StreamClient
	stream         string
	responseStream string
	groupID        string
	consumerName   string
	chat           ChatService
	logger         *zerolog.Logger
}

func NewConsumer(client StreamClient, cfg *RedisStreamConfig, chat ChatService, logger *zerolog.Logger) *Consumer {
	return &Consumer{
		client:         client,
		stream:         cfg.Stream,
		responseStream: cfg.ResponseStream,
		groupID:        cfg.Group,
		consumerName:   cfg.ConsumerName,
		chat:           chat,
		logger:         logger,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.groupID, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.stream).
		Str("response_stream", c.responseStream).
		Str("group", c.groupID).
		Str("consumer", c.consumerName).
		Msg("Consumer started")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		msgs, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.groupID,
			Consumer: c.consumerName,
			Streams:  []string{c.stream, ">"},
			Count:    1,
			Block:    2 * time.Second,
		}).Result()

		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}

			if ctx.Err() != nil {
				return ctx.Err()
			}

			c.logger.Error().Err(err).Msg("Failed to read from stream")
			continue
		}

		for _, stream := range msgs {
			for _, msg := range stream.Messages {
				c.process(ctx, msg)
			}
		}
	}
}

func (c *Consumer) Stop() error {
	return nil
}

func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	c.logger.Info().Str("id", msg.ID).Msg("Message received")

	payload, ok := msg.Values[payloadField].(string)
	if !ok {
		c.logger.Error().Str("id", msg.ID).Msg("Missing payload field")
		c.ack(ctx, msg.ID)
		return
	}

	chatMessage, err := DecodeChatMessage(payload)
	if err != nil {
		// bad message, ACK to skip it
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to decode message")
		c.ack(ctx, msg.ID)
		return
	}

	reply := newReply(chatMessage.RequestID)
	result, err := c.chat.Chat(ctx, travel.ChatRequest{
		Message: chatMessage.Message,
		City:    chatMessage.City,
	})
	if err != nil {
		c.logger.Error().Err(err).Str("request_id", chatMessage.RequestID).Msg("Chat failed")
		reply.Error = err.Error()
	} else {
		reply.Success = true
		reply.Response = result.Response
	}

	if err := c.publishReply(ctx, reply); err != nil {
		// leave unacked so the message is redelivered
		c.logger.Error().Err(err).Str("request_id", reply.RequestID).Msg("Failed to publish reply")
		return
	}

	c.logger.Info().
		Str("id", msg.ID).
		Str("request_id", reply.RequestID).
		Bool("success", reply.Success).
		Msg("Chat request processed")

	c.ack(ctx, msg.ID)
}

func (c *Consumer) publishReply(ctx context.Context, reply ChatReply) error {
	body, err := json.Marshal(reply)
	if err != nil {
		return err
	}

	return c.client.XAdd(ctx, &redis.XAddArgs{
		Stream: c.responseStream,
		MaxLen: maxResponseStreamLen,
		Approx: true,
		Values: map[string]any{payloadField: string(body)},
	}).Err()
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	if err := c.client.XAck(ctx, c.stream, c.groupID, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ACK message")
	}
}
