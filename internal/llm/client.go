// In file: internal/llm/client.go

// Package llm drives the tool-calling conversation with a language model:
// provider clients, the agent loop and optional run statistics.
package llm

import (
	"context"

	"github.com/dileep-u-k/weather-gateway/internal/api"
	"github.com/dileep-u-k/weather-gateway/internal/tools"
)

// Role represents the originator of a message in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is one turn of the conversation sent to a model.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
	// ToolCallID and Name identify the call a RoleTool message answers.
	ToolCallID string            `json:"tool_call_id,omitempty"`
	Name       string            `json:"name,omitempty"`
	ToolCalls  []*tools.ToolCall `json:"tool_calls,omitempty"`
}

// GenerationConfig controls a single model call.
type GenerationConfig struct {
	Model string
	// Temperature is a pointer so that 0 can be distinguished from unset.
	Temperature *float32
	MaxTokens   int
}

// GenerationResult is a complete, non-streamed model reply.
type GenerationResult struct {
	Content   string
	ToolCalls []*tools.ToolCall
	Usage     api.Usage
}

// LLMClient is implemented by every model provider.
type LLMClient interface {
	// Generate sends the full conversation and returns the model's next turn,
	// which is either final text or a set of tool calls.
	Generate(
		ctx context.Context,
		messages []Message,
		config *GenerationConfig,
		availableTools []tools.Tool,
	) (*GenerationResult, error)
}

// unavailableClient stands in for a provider that could not be constructed,
// so the process can start and report the cause on every request.
type unavailableClient struct {
	err error
}

// NewUnavailableClient returns a client whose every call fails with err.
func NewUnavailableClient(err error) LLMClient {
	return &unavailableClient{err: err}
}

func (c *unavailableClient) Generate(context.Context, []Message, *GenerationConfig, []tools.Tool) (*GenerationResult, error) {
	return nil, c.err
}
