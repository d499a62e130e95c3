// In file: cmd/gateway/handler.go
package main

import (
	"context"
	"net/http"
	"time"

	"github.com/dileep-u-k/weather-gateway/internal/api"
	"github.com/dileep-u-k/weather-gateway/internal/llm"
	"github.com/dileep-u-k/weather-gateway/internal/log"
	"github.com/dileep-u-k/weather-gateway/internal/version"

	"github.com/gin-gonic/gin"
)

const rootMessage = "Weather Backend is running (Full)"

// Invoker runs the agent for one chat message. *llm.Agent implements it.
type Invoker interface {
	Run(ctx context.Context, input string) (*llm.RunResult, error)
}

// ChatHandler serves the gateway's HTTP endpoints.
type ChatHandler struct {
	agent     Invoker
	profiler  *llm.Profiler
	toolNames []string
	config    *AppConfig
}

func NewChatHandler(agent Invoker, profiler *llm.Profiler, toolNames []string, config *AppConfig) *ChatHandler {
	return &ChatHandler{
		agent:     agent,
		profiler:  profiler,
		toolNames: toolNames,
		config:    config,
	}
}

// HandleChat runs the agent once and returns its output verbatim. Any agent
// failure is reported as a 500 carrying the error text.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req api.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Detail: "Invalid request: " + err.Error()})
		return
	}

	startTime := time.Now()
	log.Infof("--- New chat request (prompt: '%.30s') ---", *req.Message)

	result, err := h.agent.Run(c.Request.Context(), *req.Message)
	if err != nil {
		log.Errorf("agent run failed after %s: %v", time.Since(startTime), err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: err.Error()})
		return
	}

	log.Infof("agent answered in %s using %d tool call(s), %d tokens",
		time.Since(startTime), result.ToolCalls, result.Usage.TotalTokens)
	c.JSON(http.StatusOK, api.ChatResponse{Response: result.Output})
}

// HandleRoot is the liveness probe.
func (h *ChatHandler) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, api.MessageResponse{Message: rootMessage})
}

type statusResponse struct {
	Build    version.BuildInfo `json:"build"`
	Provider string            `json:"provider"`
	Model    string            `json:"model"`
	Tools    []string          `json:"tools"`
	Profile  *llm.ModelProfile `json:"profile,omitempty"`
}

// HandleStatus reports the running build, the configured model and, when
// Redis is configured, that model's run history.
func (h *ChatHandler) HandleStatus(c *gin.Context) {
	resp := statusResponse{
		Build:    version.Get(),
		Provider: h.config.Provider,
		Model:    h.config.Agent.Model,
		Tools:    h.toolNames,
	}
	if h.profiler != nil {
		profile, err := h.profiler.GetProfile(c.Request.Context(), h.config.Agent.Model)
		if err != nil {
			log.Warnf("could not load profile for %s: %v", h.config.Agent.Model, err)
		} else {
			resp.Profile = profile
		}
	}
	c.JSON(http.StatusOK, resp)
}
