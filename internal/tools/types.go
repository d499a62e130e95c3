// In file: internal/tools/types.go

// Package tools defines the capabilities the agent can call and the
// provider-agnostic shapes used to describe them to a model.
package tools

// ToolTypeFunction is the only tool type the gateway exposes.
const ToolTypeFunction = "function"

// Tool is what the model is told about a capability.
type Tool struct {
	Type     string   `json:"type"`
	Function Function `json:"function"`
}

// Function names a capability and declares its input schema.
// The Description is what the model reads when deciding whether to call it.
type Function struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Parameters  JSONSchema `json:"parameters"`
}

// JSONSchema is the small slice of JSON Schema needed for tool parameters.
type JSONSchema struct {
	Type        string                 `json:"type"`
	Description string                 `json:"description,omitempty"`
	Properties  map[string]*JSONSchema `json:"properties,omitempty"`
	Required    []string               `json:"required,omitempty"`
}

// ToolCall is a model's request to run a tool. Arguments is raw JSON text.
type ToolCall struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Function ToolCallFunction `json:"function"`
}

// ToolCallFunction holds the called tool name and its JSON-encoded arguments.
type ToolCallFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// NewFunctionTool builds a function-typed Tool.
func NewFunctionTool(name, description string, parameters JSONSchema) Tool {
	return Tool{
		Type: ToolTypeFunction,
		Function: Function{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
	}
}
