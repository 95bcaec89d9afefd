package worker_handler

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// OverdueWorkOrders is the reminder sweep. It lists open work orders past
// their scheduled date, mails each responsible collaborator, and stamps
// last_reminder_at in one transaction so the next sweep skips them for 24h.
func (wh *WorkerHandler) OverdueWorkOrders() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		reminders, err := wh.repo.ListShouldRemindOverdue(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Worker handler: Error occured when list work orders")
			return err
		}
		if len(reminders) == 0 {
			return nil
		}

		tx, txErr := wh.txManager.Begin(ctx)
		if txErr != nil {
			log.Error().Err(txErr).Msg("Worker handler: Failed to open db transaction")
			return txErr
		}
		defer tx.Rollback(ctx)

		// A failed send only skips the stamp, so that order is retried on the
		// next sweep.
		remindedIDs := []string{}
		for _, reminder := range reminders {
			if err := wh.mailer.SendOverdueWorkOrderReminder(&reminder); err != nil {
				log.Error().Err(err).Str("work_order_id", reminder.ID).Msg("Worker handler: Error occured when trying to send email.")
				continue
			}

			remindedIDs = append(remindedIDs, reminder.ID)
		}

		if len(remindedIDs) == 0 {
			return nil
		}

		if err := wh.repo.BatchUpdateReminderOverdue(ctx, tx, remindedIDs); err != nil {
			log.Error().Err(err).Msg("Worker handler: Error occured when update work orders")
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			log.Error().Err(err).Msg("Worker handler: Error when initiating commit transaction")
			return err
		}

		return nil
	}
}
