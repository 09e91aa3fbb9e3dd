package factory

import (
	"time"

	"ai-chatroom-be/pkg/llm"
	"ai-chatroom-be/pkg/llm/local"
	"ai-chatroom-be/pkg/llm/openai"
)

// NewProvider returns the provider serving a backend variant, or nil for UnconfiguredBackend.
func NewProvider(backend llm.Backend, timeout time.Duration) llm.Provider {
	switch b := backend.(type) {
	case llm.LocalBackend:
		return local.NewLocalProvider()
	case llm.RemoteBackend:
		return openai.NewProvider(b, timeout)
	default:
		return nil
	}
}
