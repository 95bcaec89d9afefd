package queue

import (
	worker_task "github.com/alissonmartineli/maintenance-tech/internal/worker/tasks"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type TaskQueue struct {
	client *asynq.Client
}

func NewTaskQueue(redis *redis.Client) *TaskQueue {
	return &TaskQueue{
		client: asynq.NewClientFromRedisClient(redis),
	}
}

// EnqueueOverdueWorkOrderReminders kicks an immediate reminder sweep instead
// of waiting for the next cron window. The worker boot path uses it so orders
// that went overdue while the worker was down get flushed right away.
func (q *TaskQueue) EnqueueOverdueWorkOrderReminders() error {
	log.Info().Msg("Enqueueing overdue work order reminder sweep.")
	task := asynq.NewTask(worker_task.TaskOverdueWorkOrderReminders, nil, asynq.Queue("low"), asynq.MaxRetry(3))

	_, err := q.client.Enqueue(task)
	return err
}
