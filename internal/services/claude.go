package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const (
	defaultBaseURL   = "https://api.anthropic.com/v1"
	anthropicVersion = "2023-06-01"
	defaultTimeout   = 120 * time.Second
)

// Message is a single role-tagged entry in a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// MessageRequest mirrors the Claude messages API payload. The wire shape must
// stay exactly like this to interoperate with the upstream provider.
type MessageRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Messages    []Message `json:"messages"`
	System      string    `json:"system,omitempty"`
	Temperature *float64  `json:"temperature,omitempty"`
}

// MessageResponse carries the raw text of the model's single reply.
type MessageResponse struct {
	Text string
}

// MessageClient sends a structured prompt to the model endpoint and returns
// raw text. Pure transport, no retries; callers decide what a failure means.
type MessageClient interface {
	CreateMessage(ctx context.Context, req MessageRequest) (*MessageResponse, error)
}

type claudeClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClaudeClient builds an HTTP client for the Claude messages API. A zero
// timeout falls back to 120 seconds, matching the upstream limit.
func NewClaudeClient(apiKey, baseURL string, timeout time.Duration) MessageClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &claudeClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type messagesAPIResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func (c *claudeClient) CreateMessage(ctx context.Context, req MessageRequest) (*MessageResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode message request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build message request: %w", err)
	}
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)
	httpReq.Header.Set("content-type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("❌ Claude API returned status %d: %s", resp.StatusCode, string(body))
		return nil, &TransportError{Status: resp.StatusCode, Body: string(body)}
	}

	var apiResp messagesAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, &TransportError{Status: resp.StatusCode, Body: string(body), Err: err}
	}
	if len(apiResp.Content) == 0 {
		return nil, &TransportError{Status: resp.StatusCode, Body: string(body), Err: fmt.Errorf("empty content in response")}
	}

	return &MessageResponse{Text: apiResp.Content[0].Text}, nil
}
