package factory

import (
	"testing"
	"time"

	"ai-chatroom-be/pkg/llm"
	"ai-chatroom-be/pkg/llm/local"
	"ai-chatroom-be/pkg/llm/openai"

	"github.com/stretchr/testify/assert"
)

func TestNewProvider(t *testing.T) {
	assert.IsType(t, &local.LocalProvider{}, NewProvider(llm.LocalBackend{}, time.Second))
	assert.IsType(t, &openai.Provider{}, NewProvider(llm.RemoteBackend{Endpoint: "http://x"}, time.Second))
	assert.Nil(t, NewProvider(llm.UnconfiguredBackend{}, time.Second))
}
