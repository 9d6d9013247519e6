package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Akarsh-2004/Bagragi/internal/adapters/observability"
	"github.com/Akarsh-2004/Bagragi/internal/domain"
)

// Client talks to the OpenAI-compatible chat completion endpoint.
// Every call is independent; no conversation history is kept.
type Client struct {
	base  string
	key   string
	model string
	hc    *http.Client
}

func New(base, key, model string) *Client {
	if model == "" {
		model = "llama3-70b-8192"
	}
	return &Client{
		base:  strings.TrimRight(base, "/"),
		key:   key,
		model: model,
		hc:    &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *Client) Configured() bool { return c.key != "" }

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	if !c.Configured() {
		return "", domain.ErrChatUnavailable
	}

	body, err := json.Marshal(completionRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.key)

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("groq", "chat_completions", 0, time.Since(start))
		return "", fmt.Errorf("%w: %v", domain.ErrChatUnavailable, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("groq", "chat_completions", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: status %d: %s", domain.ErrChatUnavailable, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var cr completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrChatUnavailable, err)
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: empty completion", domain.ErrChatUnavailable)
	}
	return cr.Choices[0].Message.Content, nil
}
