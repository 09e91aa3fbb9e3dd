package llm

import (
	"context"
	"fmt"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Failure describes why a completion could not be produced.
// StatusCode is zero when the request never got an HTTP response.
type Failure struct {
	StatusCode int
	Body       string
	Cause      error
}

func (f *Failure) Error() string {
	if f.StatusCode != 0 {
		return fmt.Sprintf("upstream returned status %d: %s", f.StatusCode, f.Body)
	}
	if f.Cause != nil {
		return f.Cause.Error()
	}
	return "unknown failure"
}

func (f *Failure) Unwrap() error {
	return f.Cause
}

// Completion is the result of one generation call: either Content or Failure.
type Completion struct {
	Content string
	Failure *Failure
}

func Succeeded(content string) Completion {
	return Completion{Content: content}
}

func Failed(f *Failure) Completion {
	return Completion{Failure: f}
}

func (c Completion) OK() bool {
	return c.Failure == nil
}

// Provider defines the contract for any response backend.
// Implementations never return errors; problems are reported through Completion.Failure.
type Provider interface {
	Complete(ctx context.Context, prompt string) Completion
}
