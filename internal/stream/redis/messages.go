package redis

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ChatMessage is a chat request published on the request stream.
type ChatMessage struct {
	RequestID string `json:"request_id"`
	Message   string `json:"message"`
	City      string `json:"city,omitempty"`
}

// ChatReply is the answer appended to the response stream.
type ChatReply struct {
	RequestID string `json:"request_id"`
	Success   bool   `json:"success"`
	Response  string `json:"response,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

// DecodeChatMessage parses a stream payload and assigns a request id if the
// publisher did not.
func DecodeChatMessage(payload string) (ChatMessage, error) {
	var msg ChatMessage
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		return ChatMessage{}, fmt.Errorf("failed to decode chat message: %w", err)
	}
	if msg.RequestID == "" {
		msg.RequestID = uuid.NewString()
	}
	return msg, nil
}

func newReply(requestID string) ChatReply {
	return ChatReply{
		RequestID: requestID,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
}
