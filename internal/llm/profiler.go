// In file: internal/llm/profiler.go
package llm

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dileep-u-k/weather-gateway/internal/api"
	"github.com/dileep-u-k/weather-gateway/internal/log"

	"github.com/redis/go-redis/v9"
)

const (
	StatusOnline   = "online"
	StatusDegraded = "degraded"
	StatusUnknown  = "unknown"

	// latencyAlpha weights the newest sample in the latency moving average.
	latencyAlpha = 0.1
)

// ModelProfile is the run history the gateway keeps per model.
type ModelProfile struct {
	ModelID           string    `json:"model_id"`
	Status            string    `json:"status"`
	AvgLatencyMS      int64     `json:"avg_latency_ms"`
	TotalSuccesses    int64     `json:"total_successes"`
	TotalFailures     int64     `json:"total_failures"`
	ErrorRate         float64   `json:"error_rate"`
	TotalInputTokens  int64     `json:"total_input_tokens"`
	TotalOutputTokens int64     `json:"total_output_tokens"`
	LastRunAt         time.Time `json:"last_run_at"`
}

// Profiler records agent run outcomes in Redis hashes. A nil *Profiler is
// valid and records nothing.
type Profiler struct {
	rdb *redis.Client
}

func NewProfiler(rdb *redis.Client) *Profiler {
	return &Profiler{rdb: rdb}
}

func profileKey(modelID string) string {
	return fmt.Sprintf("profile:%s", modelID)
}

// RecordSuccess folds a completed run into the model's profile.
func (p *Profiler) RecordSuccess(ctx context.Context, modelID string, latency time.Duration, usage api.Usage) {
	if p == nil {
		return
	}
	key := profileKey(modelID)

	err := p.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.HGet(ctx, key, "avg_latency_ms").Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		next := latency.Milliseconds()
		if err == nil {
			next = int64(latencyAlpha*float64(latency.Milliseconds()) + (1-latencyAlpha)*float64(current))
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, "avg_latency_ms", next)
			return nil
		})
		return err
	}, key)
	if err != nil {
		log.Warnf("failed to update latency for %s: %v", modelID, err)
	}

	pipe := p.rdb.TxPipeline()
	successes := pipe.HIncrBy(ctx, key, "total_successes", 1)
	failures := pipe.HGet(ctx, key, "total_failures")
	pipe.HIncrBy(ctx, key, "total_input_tokens", int64(usage.PromptTokens))
	pipe.HIncrBy(ctx, key, "total_output_tokens", int64(usage.CompletionTokens))
	pipe.HSet(ctx, key, "status", StatusOnline, "last_run_at", time.Now().UTC().Format(time.RFC3339Nano))
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		log.Warnf("failed to record success for %s: %v", modelID, err)
		return
	}
	totalFailures, _ := strconv.ParseInt(failures.Val(), 10, 64)
	p.storeErrorRate(ctx, key, successes.Val(), totalFailures)
}

// RecordFailure marks the model degraded and bumps its failure count.
func (p *Profiler) RecordFailure(ctx context.Context, modelID string) {
	if p == nil {
		return
	}
	key := profileKey(modelID)

	pipe := p.rdb.TxPipeline()
	failures := pipe.HIncrBy(ctx, key, "total_failures", 1)
	successes := pipe.HGet(ctx, key, "total_successes")
	pipe.HSet(ctx, key, "status", StatusDegraded, "last_run_at", time.Now().UTC().Format(time.RFC3339Nano))
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		log.Warnf("failed to record failure for %s: %v", modelID, err)
		return
	}
	totalSuccesses, _ := strconv.ParseInt(successes.Val(), 10, 64)
	p.storeErrorRate(ctx, key, totalSuccesses, failures.Val())
}

func (p *Profiler) storeErrorRate(ctx context.Context, key string, successes, failures int64) {
	total := successes + failures
	if total == 0 {
		return
	}
	if err := p.rdb.HSet(ctx, key, "error_rate", float64(failures)/float64(total)).Err(); err != nil {
		log.Warnf("failed to store error rate under %s: %v", key, err)
	}
}

// GetProfile reads the stored profile. A model with no history yet reports
// StatusUnknown.
func (p *Profiler) GetProfile(ctx context.Context, modelID string) (*ModelProfile, error) {
	if p == nil {
		return nil, errors.New("profiler is not configured")
	}
	data, err := p.rdb.HGetAll(ctx, profileKey(modelID)).Result()
	if err != nil {
		return nil, err
	}

	profile := &ModelProfile{ModelID: modelID, Status: StatusUnknown}
	if len(data) == 0 {
		return profile, nil
	}
	if s := data["status"]; s != "" {
		profile.Status = s
	}
	profile.AvgLatencyMS, _ = strconv.ParseInt(data["avg_latency_ms"], 10, 64)
	profile.TotalSuccesses, _ = strconv.ParseInt(data["total_successes"], 10, 64)
	profile.TotalFailures, _ = strconv.ParseInt(data["total_failures"], 10, 64)
	profile.ErrorRate, _ = strconv.ParseFloat(data["error_rate"], 64)
	profile.TotalInputTokens, _ = strconv.ParseInt(data["total_input_tokens"], 10, 64)
	profile.TotalOutputTokens, _ = strconv.ParseInt(data["total_output_tokens"], 10, 64)
	profile.LastRunAt, _ = time.Parse(time.RFC3339Nano, data["last_run_at"])
	return profile, nil
}
