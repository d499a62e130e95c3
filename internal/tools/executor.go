// In file: internal/tools/executor.go
package tools

import "context"

// ToolExecutor is a named capability with a declared input schema and a
// string result. Every tool registered with a Registry implements it.
type ToolExecutor interface {
	// Definition returns the schema sent to the model.
	Definition() Tool

	// Execute runs the tool with the JSON arguments the model produced.
	// The returned string is handed back to the model as the tool result.
	Execute(ctx context.Context, arguments string) (string, error)
}
