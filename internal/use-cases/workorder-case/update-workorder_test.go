package workorder_case

import (
	"context"
	"testing"
	"time"

	workorder_dto "github.com/alissonmartineli/maintenance-tech/internal/dtos/workorder-dto"
	"github.com/alissonmartineli/maintenance-tech/internal/entity"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
	use_cases "github.com/alissonmartineli/maintenance-tech/internal/use-cases"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Test 1: Happy path - partial update of description and date
func TestUpdateWorkOrder_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkOrderRepo)
	equipmentRepo := new(MockEquipmentRepo)
	collaboratorRepo := new(MockCollaboratorRepo)
	txManager := new(MockTxManager)
	tx := new(MockTx)
	cache := &use_cases.MockCache{}
	service := &WorkOrderService{
		repo:             repo,
		equipmentRepo:    equipmentRepo,
		collaboratorRepo: collaboratorRepo,
		txManager:        txManager,
		cache:            cache,
	}

	newDate := time.Now().Add(96 * time.Hour)
	newDescription := "Revisão completa do redutor"
	req := &workorder_dto.UpdateWorkOrderRequest{
		Date:        &newDate,
		Description: &newDescription,
	}

	current := &entity.WorkOrderEntity{ID: "wo-1", Done: false}
	repo.On("FindByID", ctx, "wo-1").Return(current, (*app_errors.AppError)(nil))

	txManager.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))

	updated := &entity.WorkOrderEntity{
		ID:          "wo-1",
		Date:        newDate,
		Description: newDescription,
	}
	repo.On("UpdateFieldsTx", ctx, tx, "wo-1", mock.MatchedBy(func(m entity.WorkOrderUpdate) bool {
		return m.Date != nil && m.Description != nil && m.Type == nil
	})).Return(updated, (*app_errors.AppError)(nil))

	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	resp, err := service.UpdateWorkOrder(ctx, "wo-1", req)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, newDescription, resp.Description)
	assert.Equal(t, 1, cache.DelCalled)

	repo.AssertExpectations(t)
	txManager.AssertExpectations(t)
	tx.AssertExpectations(t)
}

// Test 2: Work order not found
func TestUpdateWorkOrder_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkOrderRepo)
	service := &WorkOrderService{repo: repo}

	newDescription := "x"
	req := &workorder_dto.UpdateWorkOrderRequest{Description: &newDescription}

	notFound := app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "work_order_not_found", nil)
	repo.On("FindByID", ctx, "wo-999").Return((*entity.WorkOrderEntity)(nil), notFound)

	resp, err := service.UpdateWorkOrder(ctx, "wo-999", req)

	assert.Nil(t, resp)
	assert.Equal(t, notFound, err)

	repo.AssertExpectations(t)
}

// Test 3: Completed order is read-only
func TestUpdateWorkOrder_OrderDone(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkOrderRepo)
	service := &WorkOrderService{repo: repo}

	newDescription := "tentativa de edição"
	req := &workorder_dto.UpdateWorkOrderRequest{Description: &newDescription}

	current := &entity.WorkOrderEntity{ID: "wo-1", Done: true, Report: "finalizado"}
	repo.On("FindByID", ctx, "wo-1").Return(current, (*app_errors.AppError)(nil))

	resp, err := service.UpdateWorkOrder(ctx, "wo-1", req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusConflict, err.Code)
	assert.Equal(t, app_errors.ErrConflict, err.Type)
	assert.Equal(t, "conflict.work_order_done", err.MessageKey)

	repo.AssertNotCalled(t, "UpdateFieldsTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Test 4: New equipment reference must resolve
func TestUpdateWorkOrder_UnknownEquipment(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkOrderRepo)
	equipmentRepo := new(MockEquipmentRepo)
	service := &WorkOrderService{
		repo:          repo,
		equipmentRepo: equipmentRepo,
	}

	newEquipmentID := "equip-999"
	req := &workorder_dto.UpdateWorkOrderRequest{EquipmentID: &newEquipmentID}

	current := &entity.WorkOrderEntity{ID: "wo-1", Done: false}
	repo.On("FindByID", ctx, "wo-1").Return(current, (*app_errors.AppError)(nil))

	notFound := app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "equipment_not_found", nil)
	equipmentRepo.On("FindByID", ctx, "equip-999").Return((*entity.EquipmentEntity)(nil), notFound)

	resp, err := service.UpdateWorkOrder(ctx, "wo-1", req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusBadRequest, err.Code)
	assert.Equal(t, app_errors.ErrValidation, err.Type)

	repo.AssertNotCalled(t, "UpdateFieldsTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Test 5: Empty body - repo rejects an update with no fields
func TestUpdateWorkOrder_EmptyBody(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkOrderRepo)
	txManager := new(MockTxManager)
	tx := new(MockTx)
	service := &WorkOrderService{
		repo:      repo,
		txManager: txManager,
	}

	req := &workorder_dto.UpdateWorkOrderRequest{}

	current := &entity.WorkOrderEntity{ID: "wo-1", Done: false}
	repo.On("FindByID", ctx, "wo-1").Return(current, (*app_errors.AppError)(nil))

	txManager.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))

	emptyBody := app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.body_empty", nil)
	repo.On("UpdateFieldsTx", ctx, tx, "wo-1", entity.WorkOrderUpdate{}).Return((*entity.WorkOrderEntity)(nil), emptyBody)

	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	resp, err := service.UpdateWorkOrder(ctx, "wo-1", req)

	assert.Nil(t, resp)
	assert.Equal(t, emptyBody, err)

	tx.AssertExpectations(t)
}
