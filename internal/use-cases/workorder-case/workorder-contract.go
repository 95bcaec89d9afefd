package workorder_case

import (
	"context"

	equipment_dto "github.com/alissonmartineli/maintenance-tech/internal/dtos/equipment-dto"
	workorder_dto "github.com/alissonmartineli/maintenance-tech/internal/dtos/workorder-dto"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
)

type WorkOrderServiceContract interface {
	CreateWorkOrder(ctx context.Context, req *workorder_dto.CreateWorkOrderRequest) (*workorder_dto.WorkOrderResponse, *app_errors.AppError)
	GetWorkOrder(ctx context.Context, workOrderID string) (*workorder_dto.WorkOrderResponse, *app_errors.AppError)
	ListWorkOrders(ctx context.Context) ([]workorder_dto.WorkOrderView, *app_errors.AppError)
	UpdateWorkOrder(ctx context.Context, workOrderID string, req *workorder_dto.UpdateWorkOrderRequest) (*workorder_dto.WorkOrderResponse, *app_errors.AppError)
	ToggleDone(ctx context.Context, workOrderID string, req *workorder_dto.ToggleWorkOrderRequest) (*workorder_dto.WorkOrderResponse, *app_errors.AppError)
	Summary(ctx context.Context) (*workorder_dto.WorkOrderSummary, *app_errors.AppError)
	EquipmentHistory(ctx context.Context, equipmentID string) (*equipment_dto.EquipmentHistoryResponse, *app_errors.AppError)
}
