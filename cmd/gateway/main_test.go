package main

import (
	"context"
	"testing"

	"github.com/dileep-u-k/weather-gateway/internal/llm"
	"github.com/dileep-u-k/weather-gateway/internal/tools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeToolRegistry(t *testing.T) {
	registry := initializeToolRegistry(&AppConfig{})
	assert.Equal(t, []string{tools.WeatherToolName}, registry.Names())
}

func TestInitializeLLMClientGeminiWithoutKey(t *testing.T) {
	client, closeFn := initializeLLMClient(&AppConfig{Provider: llm.ProviderGemini})
	defer closeFn()

	_, err := client.Generate(context.Background(), []llm.Message{{Role: llm.RoleUser, Content: "hi"}}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini API key cannot be empty")
}

func TestInitializeLLMClientOpenRouter(t *testing.T) {
	client, closeFn := initializeLLMClient(&AppConfig{Provider: llm.ProviderOpenRouter, BaseURL: llm.DefaultBaseURL})
	defer closeFn()
	assert.IsType(t, &llm.OpenAIClient{}, client)
}

func TestInitializeRedisDisabled(t *testing.T) {
	assert.Nil(t, initializeRedis(&AppConfig{}))
}
