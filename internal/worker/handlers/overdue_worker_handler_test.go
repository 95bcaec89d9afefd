package worker_handler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alissonmartineli/maintenance-tech/internal/entity"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
	workorder_case "github.com/alissonmartineli/maintenance-tech/internal/use-cases/workorder-case"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockMailer struct {
	sentTo []string
	failOn map[string]bool
}

func (m *mockMailer) SendOverdueWorkOrderReminder(reminder *entity.ReminderWorkOrder) error {
	if m.failOn[reminder.ID] {
		return fmt.Errorf("mailtrap send failed: status=500")
	}
	m.sentTo = append(m.sentTo, reminder.ResponsibleEmail)
	return nil
}

func sweepTask() *asynq.Task {
	return asynq.NewTask("low:overdue_work_order_reminders", nil)
}

func TestOverdueWorkOrders_SendsAndStampsReminders(t *testing.T) {
	repo := new(workorder_case.MockWorkOrderRepo)
	mockTx := new(workorder_case.MockTx)
	txManager := new(workorder_case.MockTxManager)
	mailer := &mockMailer{}

	reminders := []entity.ReminderWorkOrder{
		{ID: "wo-1", Date: time.Now().Add(-48 * time.Hour), Description: "troca de óleo", EquipmentDescription: "Compressor", ResponsibleName: "Alisson", ResponsibleEmail: "alisson@acme.dev"},
		{ID: "wo-2", Date: time.Now().Add(-24 * time.Hour), Description: "inspeção", EquipmentDescription: "Torno CNC", ResponsibleName: "Bruna", ResponsibleEmail: "bruna@acme.dev"},
	}

	repo.On("ListShouldRemindOverdue", mock.Anything).Return(reminders, (*app_errors.AppError)(nil))
	txManager.On("Begin", mock.Anything).Return(mockTx, (*app_errors.AppError)(nil))
	repo.On("BatchUpdateReminderOverdue", mock.Anything, mockTx, []string{"wo-1", "wo-2"}).Return((*app_errors.AppError)(nil))
	mockTx.On("Commit", mock.Anything).Return((*app_errors.AppError)(nil))
	mockTx.On("Rollback", mock.Anything).Return((*app_errors.AppError)(nil))

	wh := &WorkerHandler{repo: repo, txManager: txManager, mailer: mailer}

	err := wh.OverdueWorkOrders()(context.Background(), sweepTask())

	assert.Nil(t, err)
	assert.Equal(t, []string{"alisson@acme.dev", "bruna@acme.dev"}, mailer.sentTo)
	repo.AssertExpectations(t)
	mockTx.AssertExpectations(t)
}

func TestOverdueWorkOrders_NothingToRemind(t *testing.T) {
	repo := new(workorder_case.MockWorkOrderRepo)
	txManager := new(workorder_case.MockTxManager)
	mailer := &mockMailer{}

	repo.On("ListShouldRemindOverdue", mock.Anything).Return([]entity.ReminderWorkOrder{}, (*app_errors.AppError)(nil))

	wh := &WorkerHandler{repo: repo, txManager: txManager, mailer: mailer}

	err := wh.OverdueWorkOrders()(context.Background(), sweepTask())

	assert.Nil(t, err)
	assert.Empty(t, mailer.sentTo)
	txManager.AssertNotCalled(t, "Begin", mock.Anything)
	repo.AssertExpectations(t)
}

func TestOverdueWorkOrders_FailedSendSkipsStamp(t *testing.T) {
	repo := new(workorder_case.MockWorkOrderRepo)
	mockTx := new(workorder_case.MockTx)
	txManager := new(workorder_case.MockTxManager)
	mailer := &mockMailer{failOn: map[string]bool{"wo-1": true}}

	reminders := []entity.ReminderWorkOrder{
		{ID: "wo-1", Date: time.Now().Add(-48 * time.Hour), ResponsibleEmail: "alisson@acme.dev"},
		{ID: "wo-2", Date: time.Now().Add(-24 * time.Hour), ResponsibleEmail: "bruna@acme.dev"},
	}

	repo.On("ListShouldRemindOverdue", mock.Anything).Return(reminders, (*app_errors.AppError)(nil))
	txManager.On("Begin", mock.Anything).Return(mockTx, (*app_errors.AppError)(nil))
	// only the order that was actually mailed gets its reminder stamped
	repo.On("BatchUpdateReminderOverdue", mock.Anything, mockTx, []string{"wo-2"}).Return((*app_errors.AppError)(nil))
	mockTx.On("Commit", mock.Anything).Return((*app_errors.AppError)(nil))
	mockTx.On("Rollback", mock.Anything).Return((*app_errors.AppError)(nil))

	wh := &WorkerHandler{repo: repo, txManager: txManager, mailer: mailer}

	err := wh.OverdueWorkOrders()(context.Background(), sweepTask())

	assert.Nil(t, err)
	assert.Equal(t, []string{"bruna@acme.dev"}, mailer.sentTo)
	repo.AssertExpectations(t)
	mockTx.AssertExpectations(t)
}

func TestOverdueWorkOrders_AllSendsFail(t *testing.T) {
	repo := new(workorder_case.MockWorkOrderRepo)
	mockTx := new(workorder_case.MockTx)
	txManager := new(workorder_case.MockTxManager)
	mailer := &mockMailer{failOn: map[string]bool{"wo-1": true}}

	reminders := []entity.ReminderWorkOrder{
		{ID: "wo-1", Date: time.Now().Add(-48 * time.Hour), ResponsibleEmail: "alisson@acme.dev"},
	}

	repo.On("ListShouldRemindOverdue", mock.Anything).Return(reminders, (*app_errors.AppError)(nil))
	txManager.On("Begin", mock.Anything).Return(mockTx, (*app_errors.AppError)(nil))
	mockTx.On("Rollback", mock.Anything).Return((*app_errors.AppError)(nil))

	wh := &WorkerHandler{repo: repo, txManager: txManager, mailer: mailer}

	err := wh.OverdueWorkOrders()(context.Background(), sweepTask())

	assert.Nil(t, err)
	repo.AssertNotCalled(t, "BatchUpdateReminderOverdue", mock.Anything, mock.Anything, mock.Anything)
	mockTx.AssertNotCalled(t, "Commit", mock.Anything)
}
