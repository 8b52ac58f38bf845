package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/travel-agent/internal/llm"
)

const maxResponseBytes = 4_000_000

// Client talks to an agent that is already running behind HTTP, e.g. a
// hosted LangChain agent. It posts {"input": prompt} and unwraps whatever
// shape comes back with ExtractContent.
type Client struct {
	URL        string
	HTTPClient *http.Client
}

type invokeRequest struct {
	Input string `json:"input"`
}

func NewClient(url string) (*Client, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("agent URL is required")
	}

	return &Client{
		URL:        url,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	body, err := json.Marshal(invokeRequest{Input: request.Prompt})
	if err != nil {
		return nil, fmt.Errorf("unable to serialize agent request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("unable to build agent request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("agent request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("unable to read agent response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("agent returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	return &llm.LLMResponse{
		Content:    ExtractContent(payload),
		StopReason: "end_turn",
	}, nil
}

func (c *Client) InvokeModelWithRetry(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	return c.InvokeModel(ctx, request)
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
