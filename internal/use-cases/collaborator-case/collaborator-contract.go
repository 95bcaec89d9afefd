package collaborator_case

import (
	"context"

	collaborator_dto "github.com/alissonmartineli/maintenance-tech/internal/dtos/collaborator-dto"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
)

type CollaboratorServiceContract interface {
	CreateCollaborator(ctx context.Context, req *collaborator_dto.CreateCollaboratorRequest) (*collaborator_dto.CollaboratorResponse, *app_errors.AppError)
	GetCollaborator(ctx context.Context, collaboratorID string) (*collaborator_dto.CollaboratorResponse, *app_errors.AppError)
	ListCollaborators(ctx context.Context) ([]collaborator_dto.CollaboratorResponse, *app_errors.AppError)
	ReplaceCollaborator(ctx context.Context, collaboratorID string, req *collaborator_dto.ReplaceCollaboratorRequest) (*collaborator_dto.CollaboratorResponse, *app_errors.AppError)
	DeleteCollaborator(ctx context.Context, collaboratorID string) *app_errors.AppError
}
