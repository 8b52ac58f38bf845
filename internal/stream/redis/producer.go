package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type Producer struct {
	client StreamClient
	stream string
}

func NewProducer(client StreamClient, stream string) *Producer {
	if stream == "" {
		stream = DefaultRequestStream
	}
	return &Producer{
		client: client,
		stream: stream,
	}
}

// Publish appends msg to the request stream and returns the request id and
// the stream entry id.
func (p *Producer) Publish(ctx context.Context, msg ChatMessage) (ChatMessage, string, error) {
	if msg.Message == "" && msg.City == "" {
		return msg, "", fmt.Errorf("message or city is required")
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return msg, "", fmt.Errorf("failed to encode chat message: %w", err)
	}

	// decoding assigns the request id when missing
	msg, err = DecodeChatMessage(string(body))
	if err != nil {
		return msg, "", err
	}
	body, err = json.Marshal(msg)
	if err != nil {
		return msg, "", fmt.Errorf("failed to encode chat message: %w", err)
	}

	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{payloadField: string(body)},
	}).Result()
	if err != nil {
		return msg, "", fmt.Errorf("failed to publish to %s: %w", p.stream, err)
	}

	return msg, id, nil
}
