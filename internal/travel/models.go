package travel

import (
	"strings"
	"unicode/utf8"

	"github.com/povarna/generative-ai-agents/travel-agent/internal/middleware"
)

const MaxMessageLength = 4000

type ChatRequest struct {
	Message string `json:"message" description:"The traveller's question"`
	City    string `json:"city,omitempty" description:"City to talk about. Wins over a city named in the message"`
}

type ChatResponse struct {
	Success   bool   `json:"success" description:"Always true"`
	Response  string `json:"response" description:"Tom's answer"`
	Timestamp string `json:"timestamp" description:"RFC3339 time of the answer"`
}

type HealthResponse struct {
	Success bool   `json:"success" description:"Service status"`
	Message string `json:"message" description:"Status message"`
	Agent   string `json:"agent" description:"Agent name"`
}

// ChatResult is what the service hands back to transports.
type ChatResult struct {
	Response string
	City     string
	Topic    string
	State    string
}

func (r *ChatRequest) Validate() error {
	if strings.TrimSpace(r.Message) == "" && strings.TrimSpace(r.City) == "" {
		return middleware.ErrEmptyChatRequest
	}
	if utf8.RuneCountInString(r.Message) > MaxMessageLength {
		return middleware.ErrMessageTooLong
	}
	return nil
}
