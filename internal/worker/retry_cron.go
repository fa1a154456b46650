package worker

// retry_cron.go
// Background goroutine that periodically drains the receipt DLQ and
// re-enqueues failed jobs while they still have attempts left. Jobs that
// exhausted their attempts are parked on a terminal list for manual
// inspection. The circuit breaker gates the whole tick — there is no point
// re-enqueueing receipts while SMTP is known to be down.

import (
	"context"
	"encoding/json"
	"time"

	"shopops/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	retryTickInterval  = 30 * time.Second
	retryBatchSize     = 10
	MaxReceiptAttempts = 3
)

// RetryCronConfig holds all dependencies for the retry goroutine.
type RetryCronConfig struct {
	RDB *redis.Client
	CB  *infra.CircuitBreaker
}

// StartRetryCron launches a background goroutine that ticks every 30s and
// works through the DLQ. It respects the context for graceful shutdown.
func StartRetryCron(ctx context.Context, cfg RetryCronConfig) {
	go func() {
		ticker := time.NewTicker(retryTickInterval)
		defer ticker.Stop()

		log.Info().Msg("retry_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("retry_cron: shutting down")
				return
			case <-ticker.C:
				processRetries(ctx, cfg)
			}
		}
	}()
}

func processRetries(ctx context.Context, cfg RetryCronConfig) {
	// If the breaker is open, SMTP is still down — skip the tick entirely.
	if cfg.CB.State() == infra.CBOpen {
		log.Debug().Msg("retry_cron: circuit breaker is open, skipping tick")
		return
	}

	dlqKey := DLQPrefix + QueueReceipts
	deadKey := dlqKey + DeadSuffix

	for i := 0; i < retryBatchSize; i++ {
		raw, err := cfg.RDB.RPop(ctx, dlqKey).Result()
		if err == redis.Nil {
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("retry_cron: failed to pop DLQ entry")
			return
		}

		var entry DLQEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			log.Error().Err(err).Msg("retry_cron: malformed DLQ entry — discarding")
			continue
		}

		if entry.Attempts >= MaxReceiptAttempts {
			if err := cfg.RDB.LPush(ctx, deadKey, raw).Err(); err != nil {
				log.Error().Err(err).Msg("retry_cron: failed to park exhausted entry")
			}
			log.Error().
				Str("job_type", entry.JobType).
				Int("attempts", entry.Attempts).
				Msg("retry_cron: max attempts exceeded, parked for manual inspection")
			continue
		}

		job := Job{Type: entry.JobType, Payload: entry.Payload}
		encoded, err := json.Marshal(job)
		if err != nil {
			log.Error().Err(err).Msg("retry_cron: failed to marshal job")
			continue
		}
		if err := cfg.RDB.LPush(ctx, entry.OriginalQueue, encoded).Err(); err != nil {
			log.Error().Err(err).Msg("retry_cron: failed to re-enqueue job")
			continue
		}

		log.Info().
			Str("job_type", entry.JobType).
			Int("attempts", entry.Attempts).
			Msg("retry_cron: job re-enqueued from DLQ")
	}
}
