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

// Test 1: Happy path - work order opens with done=false and empty report
func TestCreateWorkOrder_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkOrderRepo)
	equipmentRepo := new(MockEquipmentRepo)
	collaboratorRepo := new(MockCollaboratorRepo)
	cache := &use_cases.MockCache{}
	service := &WorkOrderService{
		repo:             repo,
		equipmentRepo:    equipmentRepo,
		collaboratorRepo: collaboratorRepo,
		cache:            cache,
	}

	date := time.Now().Add(72 * time.Hour)
	req := &workorder_dto.CreateWorkOrderRequest{
		Date:          date,
		ResponsibleID: "collab-1",
		Type:          "preventive",
		EquipmentID:   "equip-1",
		Description:   "Lubrificar mancais",
	}

	equipmentRepo.On("FindByID", ctx, "equip-1").Return(&entity.EquipmentEntity{ID: "equip-1"}, (*app_errors.AppError)(nil))
	collaboratorRepo.On("FindByID", ctx, "collab-1").Return(&entity.CollaboratorEntity{ID: "collab-1"}, (*app_errors.AppError)(nil))

	repo.On("Insert", ctx, mock.MatchedBy(func(w *entity.WorkOrderEntity) bool {
		return w.ID != "" &&
			w.Done == false &&
			w.Report == "" &&
			w.Type == entity.TypePreventive &&
			w.Date.Equal(date)
	})).Return((*app_errors.AppError)(nil))

	resp, err := service.CreateWorkOrder(ctx, req)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.False(t, resp.Done)
	assert.Empty(t, resp.Report)
	assert.Equal(t, "preventive", resp.Type)
	assert.Equal(t, 1, cache.DelCalled) // summary invalidated

	repo.AssertExpectations(t)
	equipmentRepo.AssertExpectations(t)
	collaboratorRepo.AssertExpectations(t)
}

// Test 2: Equipment reference does not resolve
func TestCreateWorkOrder_UnknownEquipment(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkOrderRepo)
	equipmentRepo := new(MockEquipmentRepo)
	collaboratorRepo := new(MockCollaboratorRepo)
	service := &WorkOrderService{
		repo:             repo,
		equipmentRepo:    equipmentRepo,
		collaboratorRepo: collaboratorRepo,
	}

	req := &workorder_dto.CreateWorkOrderRequest{
		Date:          time.Now(),
		ResponsibleID: "collab-1",
		Type:          "corrective",
		EquipmentID:   "equip-999",
		Description:   "Trocar rolamento",
	}

	notFound := app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "equipment_not_found", nil)
	equipmentRepo.On("FindByID", ctx, "equip-999").Return((*entity.EquipmentEntity)(nil), notFound)

	resp, err := service.CreateWorkOrder(ctx, req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	// Dangling reference on input is the caller's mistake, not a missing
	// resource of this endpoint.
	assert.Equal(t, fiber.StatusBadRequest, err.Code)
	assert.Equal(t, app_errors.ErrValidation, err.Type)
	assert.Equal(t, "equipment_id", err.Details[0].Field)

	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	equipmentRepo.AssertExpectations(t)
}

// Test 3: Responsible reference does not resolve
func TestCreateWorkOrder_UnknownResponsible(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkOrderRepo)
	equipmentRepo := new(MockEquipmentRepo)
	collaboratorRepo := new(MockCollaboratorRepo)
	service := &WorkOrderService{
		repo:             repo,
		equipmentRepo:    equipmentRepo,
		collaboratorRepo: collaboratorRepo,
	}

	req := &workorder_dto.CreateWorkOrderRequest{
		Date:          time.Now(),
		ResponsibleID: "collab-999",
		Type:          "predictive",
		EquipmentID:   "equip-1",
		Description:   "Análise de vibração",
	}

	equipmentRepo.On("FindByID", ctx, "equip-1").Return(&entity.EquipmentEntity{ID: "equip-1"}, (*app_errors.AppError)(nil))

	notFound := app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "collaborator_not_found", nil)
	collaboratorRepo.On("FindByID", ctx, "collab-999").Return((*entity.CollaboratorEntity)(nil), notFound)

	resp, err := service.CreateWorkOrder(ctx, req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusBadRequest, err.Code)
	assert.Equal(t, "responsible_id", err.Details[0].Field)

	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

// Test 4: Insert fails - store fault surfaces as 500
func TestCreateWorkOrder_InsertFails(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkOrderRepo)
	equipmentRepo := new(MockEquipmentRepo)
	collaboratorRepo := new(MockCollaboratorRepo)
	service := &WorkOrderService{
		repo:             repo,
		equipmentRepo:    equipmentRepo,
		collaboratorRepo: collaboratorRepo,
	}

	req := &workorder_dto.CreateWorkOrderRequest{
		Date:          time.Now(),
		ResponsibleID: "collab-1",
		Type:          "corrective",
		EquipmentID:   "equip-1",
		Description:   "Reparo emergencial",
	}

	equipmentRepo.On("FindByID", ctx, "equip-1").Return(&entity.EquipmentEntity{ID: "equip-1"}, (*app_errors.AppError)(nil))
	collaboratorRepo.On("FindByID", ctx, "collab-1").Return(&entity.CollaboratorEntity{ID: "collab-1"}, (*app_errors.AppError)(nil))

	insertError := app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", nil)
	repo.On("Insert", ctx, mock.Anything).Return(insertError)

	resp, err := service.CreateWorkOrder(ctx, req)

	assert.Nil(t, resp)
	assert.Equal(t, insertError, err)

	repo.AssertExpectations(t)
}
