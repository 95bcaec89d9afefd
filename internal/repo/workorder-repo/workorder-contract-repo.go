package workorder_repo

import (
	"context"

	"github.com/alissonmartineli/maintenance-tech/internal/abstraction/tx"
	"github.com/alissonmartineli/maintenance-tech/internal/entity"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
)

type WorkOrderRepoContract interface {
	Insert(ctx context.Context, workOrder *entity.WorkOrderEntity) *app_errors.AppError
	FindByID(ctx context.Context, workOrderID string) (*entity.WorkOrderEntity, *app_errors.AppError)
	ListAll(ctx context.Context) ([]entity.WorkOrderEntity, *app_errors.AppError)
	ListByEquipment(ctx context.Context, equipmentID string) ([]entity.WorkOrderEntity, *app_errors.AppError)
	UpdateFieldsTx(ctx context.Context, t tx.Tx, workOrderID string, model entity.WorkOrderUpdate) (*entity.WorkOrderEntity, *app_errors.AppError)
	ToggleDoneTx(ctx context.Context, t tx.Tx, workOrderID string, report string) (*entity.WorkOrderEntity, *app_errors.AppError)
	ListShouldRemindOverdue(ctx context.Context) ([]entity.ReminderWorkOrder, *app_errors.AppError)
	BatchUpdateReminderOverdue(ctx context.Context, t tx.Tx, workOrderIDs []string) *app_errors.AppError
}
