package worker

import (
	"fmt"

	worker_handler "github.com/alissonmartineli/maintenance-tech/internal/worker/handlers"
	worker_task "github.com/alissonmartineli/maintenance-tech/internal/worker/tasks"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

func RegisterWorkerHandlers(mux *asynq.ServeMux, h *worker_handler.WorkerHandler) {
	mux.HandleFunc(
		worker_task.TaskOverdueWorkOrderReminders,
		h.OverdueWorkOrders(),
	)
}

func RegisterCronJobs(s *asynq.Scheduler) error {
	jobs := []struct {
		spec  string
		task  *asynq.Task
		queue string
		desc  string
	}{
		{
			spec:  "0 */6 * * *",
			task:  asynq.NewTask(worker_task.TaskOverdueWorkOrderReminders, nil),
			queue: "low",
			desc:  "send overdue work order reminders",
		},
	}

	for _, job := range jobs {
		if _, err := s.Register(job.spec, job.task, asynq.Queue(job.queue)); err != nil {
			return fmt.Errorf("register %s failed: %w", job.desc, err)
		}
		log.Info().Msgf("scheduled: %s", job.desc)
	}

	return nil
}
