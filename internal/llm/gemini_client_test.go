package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/dileep-u-k/weather-gateway/internal/tools"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiClientRequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "")
	require.Error(t, err)
	assert.Equal(t, "gemini API key cannot be empty", err.Error())
}

func TestConvertSchema(t *testing.T) {
	def := tools.NewWeatherTool(fixedResolver("x")).Definition()
	schema := convertSchema(def.Function.Parameters)

	assert.Equal(t, genai.TypeObject, schema.Type)
	assert.Equal(t, []string{"city"}, schema.Required)
	require.Contains(t, schema.Properties, "city")
	assert.Equal(t, genai.TypeString, schema.Properties["city"].Type)
}

func TestToGeminiToolsSingleDeclarationList(t *testing.T) {
	got := toGeminiTools(newTestRegistry().Definitions())
	require.Len(t, got, 1)
	require.Len(t, got[0].FunctionDeclarations, 1)
	assert.Equal(t, tools.WeatherToolName, got[0].FunctionDeclarations[0].Name)
}

func TestToGeminiContents(t *testing.T) {
	contents, system := toGeminiContents([]Message{
		{Role: RoleSystem, Content: "sys"},
		{Role: RoleUser, Content: "weather in Paris and Rome?"},
		{Role: RoleAssistant, ToolCalls: []*tools.ToolCall{
			weatherCall("a", `{"city":"Paris"}`),
			weatherCall("b", `{"city":"Rome"}`),
		}},
		{Role: RoleTool, ToolCallID: "a", Name: tools.WeatherToolName, Content: "Paris result"},
		{Role: RoleTool, ToolCallID: "b", Name: tools.WeatherToolName, Content: "Rome result"},
	})

	assert.Equal(t, "sys", system)
	require.Len(t, contents, 3)

	assert.Equal(t, "user", contents[0].Role)
	assert.Equal(t, genai.Text("weather in Paris and Rome?"), contents[0].Parts[0])

	assert.Equal(t, "model", contents[1].Role)
	require.Len(t, contents[1].Parts, 2)
	call, ok := contents[1].Parts[0].(genai.FunctionCall)
	require.True(t, ok)
	assert.Equal(t, tools.WeatherToolName, call.Name)
	assert.Equal(t, map[string]any{"city": "Paris"}, call.Args)

	assert.Equal(t, "user", contents[2].Role)
	require.Len(t, contents[2].Parts, 2)
	resp, ok := contents[2].Parts[1].(genai.FunctionResponse)
	require.True(t, ok)
	assert.Equal(t, tools.WeatherToolName, resp.Name)
	assert.Equal(t, map[string]any{"result": "Rome result"}, resp.Response)
}

func TestParseGeminiResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{
				genai.Text(" Checking. "),
				genai.FunctionCall{Name: tools.WeatherToolName, Args: map[string]any{"city": "Paris"}},
			}},
		}},
		UsageMetadata: &genai.UsageMetadata{PromptTokenCount: 9, CandidatesTokenCount: 3, TotalTokenCount: 12},
	}

	res, err := parseGeminiResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, "Checking.", res.Content)
	assert.Equal(t, 12, res.Usage.TotalTokens)
	require.Len(t, res.ToolCalls, 1)
	assert.True(t, strings.HasPrefix(res.ToolCalls[0].ID, "call_"))
	assert.JSONEq(t, `{"city":"Paris"}`, res.ToolCalls[0].Function.Arguments)
}

func TestParseGeminiResponseEmpty(t *testing.T) {
	_, err := parseGeminiResponse(&genai.GenerateContentResponse{})
	require.Error(t, err)
	assert.Equal(t, "no content returned from Gemini", err.Error())
}
