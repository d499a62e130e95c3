// In file: internal/llm/agent.go
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dileep-u-k/weather-gateway/internal/api"
	"github.com/dileep-u-k/weather-gateway/internal/log"
	"github.com/dileep-u-k/weather-gateway/internal/tools"
)

// ErrMaxIterations is returned when the model keeps requesting tools past
// the configured limit.
var ErrMaxIterations = errors.New("exceeded maximum number of tool calls")

// AgentConfig is the read-only agent configuration built at startup.
type AgentConfig struct {
	Model         string   `yaml:"model"`
	Temperature   *float32 `yaml:"temperature"`
	MaxTokens     int      `yaml:"max_tokens"`
	MaxIterations int      `yaml:"max_iterations"`
	SystemPrompt  string   `yaml:"system_prompt"`
}

// RunResult is the outcome of one agent run.
type RunResult struct {
	Output    string
	Usage     api.Usage
	ToolCalls int
}

// Agent answers a prompt by letting the model call registered tools until it
// produces a final text reply.
type Agent struct {
	client   LLMClient
	registry *tools.Registry
	profiler *Profiler
	config   *AgentConfig
}

// NewAgent wires an agent. profiler may be nil.
func NewAgent(client LLMClient, registry *tools.Registry, profiler *Profiler, config *AgentConfig) *Agent {
	return &Agent{
		client:   client,
		registry: registry,
		profiler: profiler,
		config:   config,
	}
}

// Run executes one tool-calling conversation for input. Tool calls run
// sequentially; a failing tool is reported to the model as text.
func (a *Agent) Run(ctx context.Context, input string) (*RunResult, error) {
	start := time.Now()
	result, err := a.run(ctx, input)
	if err != nil {
		a.profiler.RecordFailure(ctx, a.config.Model)
		return nil, err
	}
	a.profiler.RecordSuccess(ctx, a.config.Model, time.Since(start), result.Usage)
	return result, nil
}

func (a *Agent) run(ctx context.Context, input string) (*RunResult, error) {
	messages := []Message{
		{Role: RoleSystem, Content: a.systemPrompt()},
		{Role: RoleUser, Content: input},
	}
	genConfig := &GenerationConfig{
		Model:       a.config.Model,
		Temperature: a.config.Temperature,
		MaxTokens:   a.config.MaxTokens,
	}
	definitions := a.registry.Definitions()

	var (
		usage     api.Usage
		toolCalls int
	)
	for i := 0; i < a.maxIterations(); i++ {
		result, err := a.client.Generate(ctx, messages, genConfig, definitions)
		if err != nil {
			return nil, fmt.Errorf("LLM generation failed: %w", err)
		}
		usage.Add(result.Usage)

		if len(result.ToolCalls) == 0 {
			log.Debugf("agent finished after %d model call(s), %d tool call(s)", i+1, toolCalls)
			return &RunResult{Output: result.Content, Usage: usage, ToolCalls: toolCalls}, nil
		}

		messages = append(messages, Message{Role: RoleAssistant, Content: result.Content, ToolCalls: result.ToolCalls})
		for _, call := range result.ToolCalls {
			toolCalls++
			log.Infof("executing tool %s (id %s) with args %s", call.Function.Name, call.ID, call.Function.Arguments)
			output, err := a.registry.Execute(ctx, call.Function.Name, call.Function.Arguments)
			if err != nil {
				output = fmt.Sprintf("Error executing tool %s: %v", call.Function.Name, err)
			}
			messages = append(messages, Message{
				Role:       RoleTool,
				ToolCallID: call.ID,
				Name:       call.Function.Name,
				Content:    output,
			})
		}
	}
	return nil, ErrMaxIterations
}

func (a *Agent) systemPrompt() string {
	if a.config.SystemPrompt != "" {
		return a.config.SystemPrompt
	}
	return DefaultSystemPrompt
}

func (a *Agent) maxIterations() int {
	if a.config.MaxIterations > 0 {
		return a.config.MaxIterations
	}
	return DefaultMaxIterations
}
