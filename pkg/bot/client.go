// Package bot provides the public Go SDK for the support bot API.
package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the public SDK client for the support bot API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientConfig holds client configuration.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// NewClient creates a new support bot client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:5000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// ChatRequest represents a chat turn request.
type ChatRequest struct {
	SessionID string `json:"sessionId,omitempty"`
	Message   string `json:"message"`
}

// ChatResponse represents a chat turn response.
type ChatResponse struct {
	SessionID  string  `json:"sessionId"`
	Reply      string  `json:"reply"`
	Intent     string  `json:"intent,omitempty"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
}

// TranscriptMessage represents one transcript entry.
type TranscriptMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// TranscriptResponse represents a session transcript.
type TranscriptResponse struct {
	SessionID string              `json:"sessionId"`
	Messages  []TranscriptMessage `json:"messages"`
}

// StatsResponse represents classifier and session statistics.
type StatsResponse struct {
	TotalExamples      int            `json:"totalExamples"`
	UniqueIntents      int            `json:"uniqueIntents"`
	IntentDistribution map[string]int `json:"intentDistribution"`
	VocabularySize     int            `json:"vocabularySize"`
	ActiveSessions     int            `json:"activeSessions"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Chat sends one chat turn and returns the reply.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	var resp ChatResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/chat", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Transcript fetches the transcript for a session.
func (c *Client) Transcript(ctx context.Context, sessionID string) (*TranscriptResponse, error) {
	var resp TranscriptResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/chat/"+sessionID, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Clear deletes a session and its transcript.
func (c *Client) Clear(ctx context.Context, sessionID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/chat/"+sessionID, nil, nil)
}

// Stats fetches classifier training statistics.
func (c *Client) Stats(ctx context.Context) (*StatsResponse, error) {
	var resp StatsResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/stats", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health checks the service health.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("bot: API returned status %d: %s", resp.StatusCode, string(data))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
