package mcpadapter

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/travel"
)

// ChatService answers a travel question.
type ChatService interface {
	Chat(ctx context.Context, req travel.ChatRequest) (travel.ChatResult, error)
}

// TravelChatInput is the MCP tool input schema for travel_chat.
type TravelChatInput struct {
	Message string `json:"message" jsonschema:"the traveller's question"`
	City    string `json:"city,omitempty" jsonschema:"optional city to talk about, wins over a city named in the message"`
}

// TravelChatOutput is the structured result of travel_chat.
type TravelChatOutput struct {
	Response  string `json:"response" jsonschema:"Tom's answer"`
	City      string `json:"city,omitempty" jsonschema:"city the answer is about"`
	Topic     string `json:"topic,omitempty" jsonschema:"landmark table key used for validation"`
	State     string `json:"state" jsonschema:"how the answer was accepted"`
	Timestamp string `json:"timestamp" jsonschema:"RFC3339 time of the answer"`
}

// NewTravelChatHandler returns a tool handler backed by the travel service.
// Pass the returned function to mcp.AddTool.
func NewTravelChatHandler(chat ChatService) func(context.Context, *mcp.CallToolRequest, TravelChatInput) (*mcp.CallToolResult, TravelChatOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input TravelChatInput) (*mcp.CallToolResult, TravelChatOutput, error) {
		return TravelChat(ctx, chat, req, input)
	}
}

// TravelChat answers one question through the validated travel pipeline.
func TravelChat(
	ctx context.Context,
	chat ChatService,
	req *mcp.CallToolRequest,
	input TravelChatInput,
) (*mcp.CallToolResult, TravelChatOutput, error) {
	result, err := chat.Chat(ctx, travel.ChatRequest{
		Message: input.Message,
		City:    input.City,
	})
	if err != nil {
		return nil, TravelChatOutput{}, err
	}

	return nil, TravelChatOutput{
		Response:  result.Response,
		City:      result.City,
		Topic:     result.Topic,
		State:     result.State,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
