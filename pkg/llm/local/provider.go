package local

import (
	"context"

	"ai-chatroom-be/pkg/llm"
)

const responsePrefix = "Local model response to: "

// LocalProvider is the stand-in model used when settings select local mode.
type LocalProvider struct{}

var _ llm.Provider = &LocalProvider{}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

func (p *LocalProvider) Complete(_ context.Context, prompt string) llm.Completion {
	return llm.Succeeded(responsePrefix + prompt)
}
