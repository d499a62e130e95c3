// In file: internal/api/types.go

// Package api holds the JSON shapes exchanged with gateway clients.
package api

// ChatRequest is the body of POST /chat. Message is a pointer so that a
// missing field can be told apart from an empty string.
type ChatRequest struct {
	Message *string `json:"message" binding:"required"`
}

// ChatResponse carries the agent's final answer verbatim.
type ChatResponse struct {
	Response string `json:"response"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is the liveness payload served at GET /.
type MessageResponse struct {
	Message string `json:"message"`
}

// Usage reports token consumption for one or more model calls.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add accumulates another call's usage into u.
func (u *Usage) Add(other Usage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
}
