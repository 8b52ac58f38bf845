package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/smithy-go"
	"github.com/povarna/generative-ai-agents/travel-agent/internal/llm"
)

const anthropicVersion = "bedrock-2023-05-31"

// Bedrock error codes worth another attempt.
var retryableCodes = []string{
	"ThrottlingException",
	"TooManyRequestsException",
	"ServiceUnavailableException",
	"InternalServerException",
	"ModelNotReadyException",
	"ModelTimeoutException",
}

// Transport failures that surface without an API error code.
var retryableMessages = []string{
	"Rate exceeded",
	"connection reset",
	"EOF",
	"timeout",
}

type claudeRequest struct {
	AnthropicVersion string       `json:"anthropic_version"`
	MaxTokens        int          `json:"max_tokens"`
	Temperature      float64      `json:"temperature"`
	System           string       `json:"system,omitempty"`
	Messages         []claudeTurn `json:"messages"`
}

type claudeTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeReply struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

// encodeClaudeRequest renders a single-turn request.
func encodeClaudeRequest(request llm.LLMRequest) ([]byte, error) {
	return json.Marshal(claudeRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        request.MaxTokens,
		Temperature:      request.Temperature,
		System:           request.System,
		Messages:         []claudeTurn{{Role: "user", Content: request.Prompt}},
	})
}

// decodeClaudeReply joins every text block of the reply.
func decodeClaudeReply(body []byte) (*llm.LLMResponse, error) {
	var reply claudeReply
	if err := json.Unmarshal(body, &reply); err != nil {
		return nil, fmt.Errorf("failed to decode claude reply: %w", err)
	}

	var text strings.Builder
	for _, block := range reply.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	return &llm.LLMResponse{
		Content:    text.String(),
		StopReason: reply.StopReason,
	}, nil
}

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	body, err := encodeClaudeRequest(request)
	if err != nil {
		return nil, fmt.Errorf("failed to encode claude request: %w", err)
	}

	output, err := c.Client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.ModelID),
		Body:        body,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to invoke %s: %w", c.ModelID, err)
	}

	return decodeClaudeReply(output.Body)
}

func (c *Client) InvokeModelWithRetry(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	var lastErr error

	for attempt := range c.MaxRetries {
		if attempt > 0 {
			if err := wait(ctx, calculateBackoff(attempt-1, c.InitialDelay, c.MaxDelay)); err != nil {
				return nil, err
			}
		}

		response, err := c.InvokeModel(ctx, request)
		if err == nil {
			return response, nil
		}
		if !isRetryableError(err) {
			return nil, fmt.Errorf("non-retryable error: %w", err)
		}
		lastErr = err
	}

	return nil, fmt.Errorf("max retries %d exceeded: %w", c.MaxRetries, lastErr)
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return slices.Contains(retryableCodes, apiErr.ErrorCode())
	}

	msg := err.Error()
	for _, marker := range slices.Concat(retryableCodes, retryableMessages) {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// calculateBackoff doubles initialDelay per attempt up to maxDelay, with
// +/-20% jitter.
func calculateBackoff(attempt int, initialDelay, maxDelay time.Duration) time.Duration {
	backoff := maxDelay
	if attempt < 16 && initialDelay<<attempt < maxDelay {
		backoff = initialDelay << attempt
	}

	spread := int64(backoff) * 2 / 5
	if spread <= 0 {
		return backoff
	}
	return backoff - backoff/5 + time.Duration(rand.Int63n(spread))
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
