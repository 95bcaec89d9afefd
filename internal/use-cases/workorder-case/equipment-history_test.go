package workorder_case

import (
	"context"
	"testing"
	"time"

	"github.com/alissonmartineli/maintenance-tech/internal/entity"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// Test 1: Happy path - history scoped to the equipment with its own counts
func TestEquipmentHistory_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkOrderRepo)
	equipmentRepo := new(MockEquipmentRepo)
	collaboratorRepo := new(MockCollaboratorRepo)
	service := &WorkOrderService{
		repo:             repo,
		equipmentRepo:    equipmentRepo,
		collaboratorRepo: collaboratorRepo,
	}

	equipment := &entity.EquipmentEntity{
		ID:          "equip-1",
		Code:        "CP-02",
		Description: "Compressor de ar",
	}
	equipmentRepo.On("FindByID", ctx, "equip-1").Return(equipment, (*app_errors.AppError)(nil))

	overdueDate := time.Now().Add(-48 * time.Hour)
	workOrders := []entity.WorkOrderEntity{
		{ID: "wo-1", Date: overdueDate, ResponsibleID: "collab-1", EquipmentID: "equip-1", Done: false},
		{ID: "wo-2", Date: overdueDate, ResponsibleID: "collab-1", EquipmentID: "equip-1", Done: true},
	}
	repo.On("ListByEquipment", ctx, "equip-1").Return(workOrders, (*app_errors.AppError)(nil))

	collaborators := []entity.CollaboratorEntity{
		{ID: "collab-1", Name: "João Lima", Email: "joao@fabrica.com"},
	}
	collaboratorRepo.On("List", ctx).Return(collaborators, (*app_errors.AppError)(nil))

	resp, err := service.EquipmentHistory(ctx, "equip-1")

	assert.Nil(t, err)
	assert.Equal(t, "CP-02", resp.Equipment.Code)
	assert.Len(t, resp.WorkOrders, 2)
	assert.Equal(t, 2, resp.Summary.Total)
	assert.Equal(t, 1, resp.Summary.InProgress)
	assert.Equal(t, 1, resp.Summary.Completed)
	assert.Equal(t, 1, resp.Summary.Overdue)

	// Uptime figures are the fixed dashboard placeholders.
	assert.Equal(t, 146, resp.Uptime.HoursRunning)
	assert.Equal(t, 10, resp.Uptime.HoursStopped)

	repo.AssertExpectations(t)
	equipmentRepo.AssertExpectations(t)
	collaboratorRepo.AssertExpectations(t)
}

// Test 2: Equipment not found
func TestEquipmentHistory_EquipmentNotFound(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkOrderRepo)
	equipmentRepo := new(MockEquipmentRepo)
	service := &WorkOrderService{
		repo:          repo,
		equipmentRepo: equipmentRepo,
	}

	notFound := app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "equipment_not_found", nil)
	equipmentRepo.On("FindByID", ctx, "equip-999").Return((*entity.EquipmentEntity)(nil), notFound)

	resp, err := service.EquipmentHistory(ctx, "equip-999")

	assert.Nil(t, resp)
	assert.Equal(t, notFound, err)

	repo.AssertNotCalled(t, "ListByEquipment", ctx, "equip-999")
}

// Test 3: Equipment with no work orders yet
func TestEquipmentHistory_NoWorkOrders(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkOrderRepo)
	equipmentRepo := new(MockEquipmentRepo)
	collaboratorRepo := new(MockCollaboratorRepo)
	service := &WorkOrderService{
		repo:             repo,
		equipmentRepo:    equipmentRepo,
		collaboratorRepo: collaboratorRepo,
	}

	equipment := &entity.EquipmentEntity{ID: "equip-1", Code: "CP-02"}
	equipmentRepo.On("FindByID", ctx, "equip-1").Return(equipment, (*app_errors.AppError)(nil))
	repo.On("ListByEquipment", ctx, "equip-1").Return([]entity.WorkOrderEntity{}, (*app_errors.AppError)(nil))
	collaboratorRepo.On("List", ctx).Return([]entity.CollaboratorEntity{}, (*app_errors.AppError)(nil))

	resp, err := service.EquipmentHistory(ctx, "equip-1")

	assert.Nil(t, err)
	assert.Len(t, resp.WorkOrders, 0)
	assert.Equal(t, 0, resp.Summary.Total)
}
