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

// Test 1: Happy path - joined views come back sorted by date
func TestListWorkOrders_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkOrderRepo)
	equipmentRepo := new(MockEquipmentRepo)
	collaboratorRepo := new(MockCollaboratorRepo)
	service := &WorkOrderService{
		repo:             repo,
		equipmentRepo:    equipmentRepo,
		collaboratorRepo: collaboratorRepo,
	}

	later := time.Now().Add(96 * time.Hour)
	sooner := time.Now().Add(48 * time.Hour)

	workOrders := []entity.WorkOrderEntity{
		{ID: "wo-later", Date: later, ResponsibleID: "collab-1", EquipmentID: "equip-1", Type: entity.TypePreventive},
		{ID: "wo-sooner", Date: sooner, ResponsibleID: "collab-1", EquipmentID: "equip-1", Type: entity.TypeCorrective},
	}
	repo.On("ListAll", ctx).Return(workOrders, (*app_errors.AppError)(nil))

	collaborators := []entity.CollaboratorEntity{
		{ID: "collab-1", Name: "Maria Souza", Email: "maria@fabrica.com"},
	}
	collaboratorRepo.On("List", ctx).Return(collaborators, (*app_errors.AppError)(nil))

	equipments := []entity.EquipmentEntity{
		{ID: "equip-1", Code: "TR-01", Description: "Torno CNC"},
	}
	equipmentRepo.On("List", ctx).Return(equipments, (*app_errors.AppError)(nil))

	views, err := service.ListWorkOrders(ctx)

	assert.Nil(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, "wo-sooner", views[0].ID)
	assert.Equal(t, "wo-later", views[1].ID)
	assert.Equal(t, "Maria Souza", views[0].Responsible.Name)
	assert.Equal(t, "TR-01", views[0].Equipment.Code)
	assert.False(t, views[0].Responsible.Missing)
	assert.Equal(t, entity.StatusScheduled, views[0].Status)

	repo.AssertExpectations(t)
	collaboratorRepo.AssertExpectations(t)
	equipmentRepo.AssertExpectations(t)
}

// Test 2: Dangling references resolve as missing, never fail the list
func TestListWorkOrders_DanglingReferences(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkOrderRepo)
	equipmentRepo := new(MockEquipmentRepo)
	collaboratorRepo := new(MockCollaboratorRepo)
	service := &WorkOrderService{
		repo:             repo,
		equipmentRepo:    equipmentRepo,
		collaboratorRepo: collaboratorRepo,
	}

	workOrders := []entity.WorkOrderEntity{
		{ID: "wo-1", Date: time.Now(), ResponsibleID: "collab-deleted", EquipmentID: "equip-deleted", Type: entity.TypeCorrective},
	}
	repo.On("ListAll", ctx).Return(workOrders, (*app_errors.AppError)(nil))
	collaboratorRepo.On("List", ctx).Return([]entity.CollaboratorEntity{}, (*app_errors.AppError)(nil))
	equipmentRepo.On("List", ctx).Return([]entity.EquipmentEntity{}, (*app_errors.AppError)(nil))

	views, err := service.ListWorkOrders(ctx)

	assert.Nil(t, err)
	assert.Len(t, views, 1)
	assert.True(t, views[0].Responsible.Missing)
	assert.Equal(t, "Unknown", views[0].Responsible.Name)
	assert.True(t, views[0].Equipment.Missing)
	assert.Equal(t, "Unknown", views[0].Equipment.Description)
	// The stored id is kept so the record can still be repaired.
	assert.Equal(t, "collab-deleted", views[0].Responsible.ID)
}

// Test 3: Ledger fetch fails
func TestListWorkOrders_RepoFails(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkOrderRepo)
	service := &WorkOrderService{repo: repo}

	storeError := app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", nil)
	repo.On("ListAll", ctx).Return(([]entity.WorkOrderEntity)(nil), storeError)

	views, err := service.ListWorkOrders(ctx)

	assert.Nil(t, views)
	assert.Equal(t, storeError, err)
}

// Test 4: Empty ledger lists as an empty slice, not nil
func TestListWorkOrders_Empty(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkOrderRepo)
	equipmentRepo := new(MockEquipmentRepo)
	collaboratorRepo := new(MockCollaboratorRepo)
	service := &WorkOrderService{
		repo:             repo,
		equipmentRepo:    equipmentRepo,
		collaboratorRepo: collaboratorRepo,
	}

	repo.On("ListAll", ctx).Return([]entity.WorkOrderEntity{}, (*app_errors.AppError)(nil))
	collaboratorRepo.On("List", ctx).Return([]entity.CollaboratorEntity{}, (*app_errors.AppError)(nil))
	equipmentRepo.On("List", ctx).Return([]entity.EquipmentEntity{}, (*app_errors.AppError)(nil))

	views, err := service.ListWorkOrders(ctx)

	assert.Nil(t, err)
	assert.NotNil(t, views)
	assert.Len(t, views, 0)
}
