// File: workers/viewcount.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"

	"hobyhub/config"
	"hobyhub/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeActivityView = "activity:view"

// ActivityViewPayload carries the listing whose view count should advance.
type ActivityViewPayload struct {
	ActivityID string `json:"activityId"`
}

// ViewCounter is the slice of the upstream client the worker needs.
type ViewCounter interface {
	IncrementViewCount(ctx context.Context, id string) error
}

// Enqueuer hands view-count tasks to the queue. The increment is fire and
// forget from the detail handler's perspective.
type Enqueuer struct {
	client *asynq.Client
}

// NewEnqueuer builds an enqueuer over the queue Redis DB.
func NewEnqueuer() *Enqueuer {
	return &Enqueuer{
		client: asynq.NewClient(queueRedisOpts()),
	}
}

// Enqueue schedules one view-count increment. MaxRetry is zero: a lost
// increment is not worth a retry storm against the upstream.
func (e *Enqueuer) Enqueue(activityID string) error {
	payload, err := json.Marshal(ActivityViewPayload{ActivityID: activityID})
	if err != nil {
		return fmt.Errorf("failed to encode view task: %w", err)
	}
	task := asynq.NewTask(TypeActivityView, payload, asynq.MaxRetry(0))
	if _, err := e.client.Enqueue(task); err != nil {
		return fmt.Errorf("failed to enqueue view task: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (e *Enqueuer) Close() error {
	return e.client.Close()
}

func queueRedisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitViewCountWorker runs the async worker in background.
func InitViewCountWorker(counter ViewCounter) {
	srv := asynq.NewServer(
		queueRedisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeActivityView, handleViewTask(counter))

	go func() {
		if err := srv.Run(mux); err != nil {
			utils.GetLogger().Error("View-count worker stopped", zap.Error(err))
		}
	}()
}

func handleViewTask(counter ViewCounter) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload ActivityViewPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to decode view task: %w", err)
		}
		if err := counter.IncrementViewCount(ctx, payload.ActivityID); err != nil {
			utils.GetLogger().Warn("View-count increment failed",
				zap.String("activity", payload.ActivityID), zap.Error(err))
			return err
		}
		return nil
	}
}
