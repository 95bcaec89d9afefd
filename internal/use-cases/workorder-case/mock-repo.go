package workorder_case

import (
	"context"

	"github.com/alissonmartineli/maintenance-tech/internal/abstraction/tx"
	"github.com/alissonmartineli/maintenance-tech/internal/entity"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
	"github.com/stretchr/testify/mock"
)

type MockWorkOrderRepo struct {
	mock.Mock
}

func (m *MockWorkOrderRepo) Insert(ctx context.Context, workOrder *entity.WorkOrderEntity) *app_errors.AppError {
	args := m.Called(ctx, workOrder)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockWorkOrderRepo) FindByID(ctx context.Context, workOrderID string) (*entity.WorkOrderEntity, *app_errors.AppError) {
	args := m.Called(ctx, workOrderID)
	return args.Get(0).(*entity.WorkOrderEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockWorkOrderRepo) ListAll(ctx context.Context) ([]entity.WorkOrderEntity, *app_errors.AppError) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.WorkOrderEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockWorkOrderRepo) ListByEquipment(ctx context.Context, equipmentID string) ([]entity.WorkOrderEntity, *app_errors.AppError) {
	args := m.Called(ctx, equipmentID)
	return args.Get(0).([]entity.WorkOrderEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockWorkOrderRepo) UpdateFieldsTx(ctx context.Context, t tx.Tx, workOrderID string, model entity.WorkOrderUpdate) (*entity.WorkOrderEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, workOrderID, model)
	return args.Get(0).(*entity.WorkOrderEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockWorkOrderRepo) ToggleDoneTx(ctx context.Context, t tx.Tx, workOrderID string, report string) (*entity.WorkOrderEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, workOrderID, report)
	return args.Get(0).(*entity.WorkOrderEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockWorkOrderRepo) ListShouldRemindOverdue(ctx context.Context) ([]entity.ReminderWorkOrder, *app_errors.AppError) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.ReminderWorkOrder), args.Get(1).(*app_errors.AppError)
}

func (m *MockWorkOrderRepo) BatchUpdateReminderOverdue(ctx context.Context, t tx.Tx, workOrderIDs []string) *app_errors.AppError {
	args := m.Called(ctx, t, workOrderIDs)
	return args.Get(0).(*app_errors.AppError)
}

// The work-order service also depends on the two registries for reference
// checks and view building.

type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) Insert(ctx context.Context, equipment *entity.EquipmentEntity) *app_errors.AppError {
	args := m.Called(ctx, equipment)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockEquipmentRepo) FindByID(ctx context.Context, equipmentID string) (*entity.EquipmentEntity, *app_errors.AppError) {
	args := m.Called(ctx, equipmentID)
	return args.Get(0).(*entity.EquipmentEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockEquipmentRepo) List(ctx context.Context) ([]entity.EquipmentEntity, *app_errors.AppError) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.EquipmentEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockEquipmentRepo) Replace(ctx context.Context, equipment *entity.EquipmentEntity) *app_errors.AppError {
	args := m.Called(ctx, equipment)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockEquipmentRepo) Delete(ctx context.Context, equipmentID string) *app_errors.AppError {
	args := m.Called(ctx, equipmentID)
	return args.Get(0).(*app_errors.AppError)
}

type MockCollaboratorRepo struct {
	mock.Mock
}

func (m *MockCollaboratorRepo) Insert(ctx context.Context, collaborator *entity.CollaboratorEntity) *app_errors.AppError {
	args := m.Called(ctx, collaborator)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockCollaboratorRepo) FindByID(ctx context.Context, collaboratorID string) (*entity.CollaboratorEntity, *app_errors.AppError) {
	args := m.Called(ctx, collaboratorID)
	return args.Get(0).(*entity.CollaboratorEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockCollaboratorRepo) List(ctx context.Context) ([]entity.CollaboratorEntity, *app_errors.AppError) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.CollaboratorEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockCollaboratorRepo) Replace(ctx context.Context, collaborator *entity.CollaboratorEntity) *app_errors.AppError {
	args := m.Called(ctx, collaborator)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockCollaboratorRepo) Delete(ctx context.Context, collaboratorID string) *app_errors.AppError {
	args := m.Called(ctx, collaboratorID)
	return args.Get(0).(*app_errors.AppError)
}
