package worker_task

// TaskOverdueWorkOrderReminders sweeps the ledger for open work orders whose
// scheduled date has passed and mails the responsible collaborator. It runs on
// a cron and carries no payload.
const TaskOverdueWorkOrderReminders = "low:overdue_work_order_reminders"
