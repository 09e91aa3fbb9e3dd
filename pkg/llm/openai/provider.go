package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai-chatroom-be/pkg/llm"
)

// Provider talks to any OpenAI-compatible /chat/completions endpoint
// (Together AI, OpenAI).
type Provider struct {
	backend llm.RemoteBackend
	client  *http.Client
}

var _ llm.Provider = &Provider{}

// Request Payload Structure (OpenAI Compatible)
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []llm.Message `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func NewProvider(backend llm.RemoteBackend, timeout time.Duration) *Provider {
	return &Provider{
		backend: backend,
		client:  &http.Client{Timeout: timeout},
	}
}

// Messages builds the request conversation: an optional system message followed by the prompt.
func (p *Provider) Messages(prompt string) []llm.Message {
	messages := make([]llm.Message, 0, 2)
	if p.backend.SystemPrompt != "" {
		messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: p.backend.SystemPrompt})
	}
	return append(messages, llm.Message{Role: llm.RoleUser, Content: prompt})
}

func (p *Provider) Complete(ctx context.Context, prompt string) llm.Completion {
	reqBody := chatRequest{
		Model:       p.backend.Model,
		Messages:    p.Messages(prompt),
		Temperature: p.backend.Temperature,
		MaxTokens:   llm.DefaultMaxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return llm.Failed(&llm.Failure{Cause: fmt.Errorf("marshal request: %w", err)})
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.backend.Endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return llm.Failed(&llm.Failure{Cause: fmt.Errorf("create request: %w", err)})
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.backend.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return llm.Failed(&llm.Failure{Cause: fmt.Errorf("request failed: %w", err)})
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return llm.Failed(&llm.Failure{Cause: fmt.Errorf("read response: %w", err)})
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return llm.Failed(&llm.Failure{StatusCode: resp.StatusCode, Body: string(bodyBytes)})
	}

	var chatResp chatResponse
	if err := json.Unmarshal(bodyBytes, &chatResp); err != nil {
		return llm.Failed(&llm.Failure{Cause: fmt.Errorf("decode response: %w", err)})
	}

	if len(chatResp.Choices) == 0 {
		return llm.Failed(&llm.Failure{Cause: errors.New("empty choices in response")})
	}

	return llm.Succeeded(chatResp.Choices[0].Message.Content)
}
