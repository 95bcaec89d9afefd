package collaborator_case

import (
	"context"

	"github.com/alissonmartineli/maintenance-tech/internal/entity"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
	"github.com/stretchr/testify/mock"
)

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
