package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsageAdd(t *testing.T) {
	var total Usage
	total.Add(Usage{PromptTokens: 10, CompletionTokens: 2, TotalTokens: 12})
	total.Add(Usage{PromptTokens: 5, CompletionTokens: 1, TotalTokens: 6})

	assert.Equal(t, Usage{PromptTokens: 15, CompletionTokens: 3, TotalTokens: 18}, total)
}
