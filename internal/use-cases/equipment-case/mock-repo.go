package equipment_case

import (
	"context"

	"github.com/alissonmartineli/maintenance-tech/internal/entity"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
	"github.com/stretchr/testify/mock"
)

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
