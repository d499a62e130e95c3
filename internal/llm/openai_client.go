// In file: internal/llm/openai_client.go
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dileep-u-k/weather-gateway/internal/api"
	"github.com/dileep-u-k/weather-gateway/internal/log"
	"github.com/dileep-u-k/weather-gateway/internal/tools"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// OpenAIClient talks to any OpenAI-compatible chat completions endpoint,
// OpenRouter by default.
type OpenAIClient struct {
	client openai.Client
}

var _ LLMClient = (*OpenAIClient)(nil)

// NewOpenAIClient creates a client for baseURL. An empty apiKey is accepted:
// the provider rejects the call later and the error reaches the caller.
// The SDK's automatic retries are disabled.
func NewOpenAIClient(apiKey, baseURL string, opts ...option.RequestOption) *OpenAIClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	clientOpts := []option.RequestOption{
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	}
	if apiKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(apiKey))
	}
	clientOpts = append(clientOpts, opts...)
	return &OpenAIClient{client: openai.NewClient(clientOpts...)}
}

// Generate performs one blocking chat completion.
func (c *OpenAIClient) Generate(
	ctx context.Context,
	messages []Message,
	config *GenerationConfig,
	availableTools []tools.Tool,
) (*GenerationResult, error) {
	if config == nil {
		config = &GenerationConfig{Model: DefaultModel}
	}
	params := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(config.Model),
		Messages: toOpenAIMessages(messages),
		Tools:    toOpenAITools(availableTools),
	}
	if config.Temperature != nil {
		params.Temperature = openai.Float(float64(*config.Temperature))
	}
	if config.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(config.MaxTokens))
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("chat completion request failed: %w", err)
	}
	return parseOpenAICompletion(completion)
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			out = append(out, openai.ChatCompletionMessageParamUnion{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{OfString: openai.String(msg.Content)},
				},
			})
		case RoleAssistant:
			assistant := &openai.ChatCompletionAssistantMessageParam{}
			if msg.Content != "" {
				assistant.Content = openai.ChatCompletionAssistantMessageParamContentUnion{OfString: openai.String(msg.Content)}
			}
			for _, tc := range msg.ToolCalls {
				assistant.ToolCalls = append(assistant.ToolCalls, openai.ChatCompletionMessageToolCallParam{
					ID: tc.ID,
					Function: openai.ChatCompletionMessageToolCallFunctionParam{
						Name:      tc.Function.Name,
						Arguments: tc.Function.Arguments,
					},
				})
			}
			out = append(out, openai.ChatCompletionMessageParamUnion{OfAssistant: assistant})
		case RoleTool:
			out = append(out, openai.ChatCompletionMessageParamUnion{
				OfTool: &openai.ChatCompletionToolMessageParam{
					Content:    openai.ChatCompletionToolMessageParamContentUnion{OfString: openai.String(msg.Content)},
					ToolCallID: msg.ToolCallID,
				},
			})
		default:
			out = append(out, openai.ChatCompletionMessageParamUnion{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{OfString: openai.String(msg.Content)},
				},
			})
		}
	}
	return out
}

func toOpenAITools(availableTools []tools.Tool) []openai.ChatCompletionToolParam {
	if len(availableTools) == 0 {
		return nil
	}
	out := make([]openai.ChatCompletionToolParam, 0, len(availableTools))
	for _, t := range availableTools {
		// Round-trip through JSON to get the SDK's free-form parameter map.
		raw, err := json.Marshal(t.Function.Parameters)
		if err != nil {
			log.Errorf("failed to marshal schema for tool %s: %v", t.Function.Name, err)
			continue
		}
		var params shared.FunctionParameters
		if err := json.Unmarshal(raw, &params); err != nil {
			log.Errorf("failed to unmarshal schema for tool %s: %v", t.Function.Name, err)
			continue
		}
		out = append(out, openai.ChatCompletionToolParam{
			Function: openai.FunctionDefinitionParam{
				Name:        t.Function.Name,
				Description: openai.String(t.Function.Description),
				Parameters:  params,
			},
		})
	}
	return out
}

func parseOpenAICompletion(completion *openai.ChatCompletion) (*GenerationResult, error) {
	if completion == nil || len(completion.Choices) == 0 {
		return nil, errors.New("no choices returned from chat completion")
	}
	choice := completion.Choices[0]
	result := &GenerationResult{
		Content: choice.Message.Content,
		Usage: api.Usage{
			PromptTokens:     int(completion.Usage.PromptTokens),
			CompletionTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:      int(completion.Usage.TotalTokens),
		},
	}
	for i, tc := range choice.Message.ToolCalls {
		id := tc.ID
		if id == "" {
			// Some OpenRouter upstreams omit call IDs.
			id = fmt.Sprintf("call_%d", i)
		}
		result.ToolCalls = append(result.ToolCalls, &tools.ToolCall{
			ID:   id,
			Type: tools.ToolTypeFunction,
			Function: tools.ToolCallFunction{
				Name:      tc.Function.Name,
				Arguments: tc.Function.Arguments,
			},
		})
	}
	return result, nil
}
