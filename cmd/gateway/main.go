// In file: cmd/gateway/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dileep-u-k/weather-gateway/internal/llm"
	"github.com/dileep-u-k/weather-gateway/internal/log"
	"github.com/dileep-u-k/weather-gateway/internal/tools"
	"github.com/dileep-u-k/weather-gateway/internal/version"
	"github.com/dileep-u-k/weather-gateway/internal/weather"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// main is the composition root: it loads configuration, builds every
// service, injects dependencies and runs the server.
func main() {
	buildInfo := version.Get()
	log.Infof("🚀 Starting Weather Gateway | Version: %s | Commit: %s", buildInfo.Version, buildInfo.GitCommit)

	// 1. LOAD CONFIGURATION
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("❌ FATAL: Configuration Error: %v", err)
	}
	log.SetLevel(cfg.LogLevel)
	log.Infof("✅ Configuration loaded (provider: %s, model: %s).", cfg.Provider, cfg.Agent.Model)

	// 2. INITIALIZE SERVICES
	registry := initializeToolRegistry(cfg)
	client, closeClient := initializeLLMClient(cfg)
	defer closeClient()

	rdb := initializeRedis(cfg)
	var profiler *llm.Profiler
	if rdb != nil {
		defer rdb.Close()
		profiler = llm.NewProfiler(rdb)
	}

	agent := llm.NewAgent(client, registry, profiler, &cfg.Agent)
	handler := NewChatHandler(agent, profiler, registry.Names(), cfg)
	log.Infof("✅ All services initialized.")

	// 3. SETUP AND RUN THE WEB SERVER
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
	srv := &http.Server{Addr: fmt.Sprintf(":%s", cfg.Port), Handler: newRouter(handler)}
	runServerWithGracefulShutdown(srv)
}

// initializeToolRegistry registers every tool the agent may call.
func initializeToolRegistry(cfg *AppConfig) *tools.Registry {
	registry := tools.NewRegistry()
	resolver := weather.NewResolver(weather.NewOpenMeteoClient(cfg.Weather))
	registry.Register(tools.NewWeatherTool(resolver))
	log.Infof("✅ Tool registry initialized with %d tool(s).", registry.Count())
	return registry
}

// initializeLLMClient builds the configured provider. A provider that cannot
// be constructed does not stop startup; requests fail with the cause instead.
func initializeLLMClient(cfg *AppConfig) (llm.LLMClient, func()) {
	switch cfg.Provider {
	case llm.ProviderGemini:
		client, err := llm.NewGeminiClient(context.Background(), cfg.APIKey, cfg.Agent.Model)
		if err != nil {
			log.Warnf("⚠️ Gemini client unavailable: %v", err)
			return llm.NewUnavailableClient(err), func() {}
		}
		return client, func() {
			if err := client.Close(); err != nil {
				log.Warnf("failed to close Gemini client: %v", err)
			}
		}
	default:
		return llm.NewOpenAIClient(cfg.APIKey, cfg.BaseURL), func() {}
	}
}

// initializeRedis connects to Redis when REDIS_ADDR is set. Run statistics
// are optional, so an unreachable server only disables them.
func initializeRedis(cfg *AppConfig) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warnf("⚠️ Could not connect to Redis at %s, run statistics disabled: %v", cfg.RedisAddr, err)
		rdb.Close()
		return nil
	}
	log.Infof("✅ Connected to Redis at %s.", cfg.RedisAddr)
	return rdb
}

// runServerWithGracefulShutdown handles the server lifecycle.
func runServerWithGracefulShutdown(srv *http.Server) {
	go func() {
		log.Infof("👂 Gateway is listening on http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Listen error: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infof("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("❌ Server shutdown failed: %v", err)
		return
	}
	log.Infof("👋 Server exited gracefully.")
}
