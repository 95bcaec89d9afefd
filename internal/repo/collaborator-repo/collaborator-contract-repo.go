package collaborator_repo

import (
	"context"

	"github.com/alissonmartineli/maintenance-tech/internal/entity"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
)

type CollaboratorRepoContract interface {
	Insert(ctx context.Context, collaborator *entity.CollaboratorEntity) *app_errors.AppError
	FindByID(ctx context.Context, collaboratorID string) (*entity.CollaboratorEntity, *app_errors.AppError)
	List(ctx context.Context) ([]entity.CollaboratorEntity, *app_errors.AppError)
	Replace(ctx context.Context, collaborator *entity.CollaboratorEntity) *app_errors.AppError
	Delete(ctx context.Context, collaboratorID string) *app_errors.AppError
}
