// In file: internal/llm/constants.go
package llm

const (
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"

	DefaultBaseURL       = "https://openrouter.ai/api/v1"
	DefaultModel         = "openai/gpt-3.5-turbo"
	DefaultGeminiModel   = "gemini-1.5-flash"
	DefaultMaxIterations = 5

	DefaultSystemPrompt = "You are a helpful assistant that can provide weather information. Use the available tools to fetch weather data when asked."

	// geminiMaxOutputTokens applies when the config leaves MaxTokens unset.
	geminiMaxOutputTokens = 4096
)
