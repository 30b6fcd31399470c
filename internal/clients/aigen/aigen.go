// Package aigen talks to OpenAI-style chat-completion APIs. Two providers
// are configured (X.AI primary, Groq fallback); selection is
// try-primary-then-secondary with no load balancing, a fixed timeout and
// no retries beyond the single fallback hop.
package aigen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/tyforge/launchpad-backend/internal/apperr"
)

type Message struct {
	Role    string `json:"role"` // system, user, assistant
	Content string `json:"content"`
}

type Options struct {
	Temperature float64
	MaxTokens   int
}

// Generator is the call contract idea generation and the chatbot depend
// on; tests substitute a stub.
type Generator interface {
	Complete(ctx context.Context, messages []Message, opts Options) (text, provider string, err error)
}

type Provider struct {
	Name    string
	BaseURL string // e.g. https://api.x.ai/v1
	Model   string
	APIKey  string
}

type Client struct {
	providers []Provider
	http      *http.Client
}

func New(providers ...Provider) *Client {
	return &Client{
		providers: providers,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Stream      bool      `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete walks the provider list in order and returns the first
// successful completion. Providers without an API key are skipped; when
// every provider fails the caller gets an upstream error.
func (c *Client) Complete(ctx context.Context, messages []Message, opts Options) (string, string, error) {
	var lastErr error
	for _, p := range c.providers {
		if p.APIKey == "" {
			continue
		}

		text, err := c.call(ctx, p, messages, opts)
		if err != nil {
			log.Printf("%s completion failed: %v", p.Name, err)
			lastErr = err
			continue
		}
		return text, p.Name, nil
	}

	if lastErr == nil {
		lastErr = errors.New("no AI provider configured")
	}
	return "", "", apperr.Upstream("failed to generate text from AI services", lastErr)
}

func (c *Client) call(ctx context.Context, p Provider, messages []Message, opts Options) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       p.Model,
		Messages:    messages,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
		Stream:      false,
	})
	if err != nil {
		return "", err
	}

	url := strings.TrimSuffix(p.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e chatResponse
		if json.Unmarshal(respBody, &e) == nil && e.Error.Message != "" {
			return "", fmt.Errorf("%s error (%d): %s", p.Name, resp.StatusCode, e.Error.Message)
		}
		return "", fmt.Errorf("%s http error (%d)", p.Name, resp.StatusCode)
	}

	var out chatResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%s returned no choices", p.Name)
	}

	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
