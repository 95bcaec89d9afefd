package collaborator_case

import (
	"context"
	"time"

	collaborator_dto "github.com/alissonmartineli/maintenance-tech/internal/dtos/collaborator-dto"
	"github.com/alissonmartineli/maintenance-tech/internal/entity"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
	collaborator_repo "github.com/alissonmartineli/maintenance-tech/internal/repo/collaborator-repo"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type CollaboratorService struct {
	redis *redis.Client
	db    *pgxpool.Pool
	repo  collaborator_repo.CollaboratorRepoContract
}

func NewCollaboratorService(db *pgxpool.Pool, redis *redis.Client) CollaboratorServiceContract {
	return &CollaboratorService{
		redis: redis,
		db:    db,
		repo:  collaborator_repo.NewCollaboratorRepo(db),
	}
}

func (s *CollaboratorService) CreateCollaborator(ctx context.Context, req *collaborator_dto.CreateCollaboratorRequest) (*collaborator_dto.CollaboratorResponse, *app_errors.AppError) {
	collaboratorID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	collaborator := &entity.CollaboratorEntity{
		ID:        collaboratorID.String(),
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Insert(ctx, collaborator); err != nil {
		return nil, err
	}

	return toCollaboratorResponse(collaborator), nil
}

func (s *CollaboratorService) GetCollaborator(ctx context.Context, collaboratorID string) (*collaborator_dto.CollaboratorResponse, *app_errors.AppError) {
	collaborator, err := s.repo.FindByID(ctx, collaboratorID)
	if err != nil {
		return nil, err
	}

	return toCollaboratorResponse(collaborator), nil
}

func (s *CollaboratorService) ListCollaborators(ctx context.Context) ([]collaborator_dto.CollaboratorResponse, *app_errors.AppError) {
	collaborators, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]collaborator_dto.CollaboratorResponse, 0, len(collaborators))
	for i := range collaborators {
		resp = append(resp, *toCollaboratorResponse(&collaborators[i]))
	}

	return resp, nil
}

func (s *CollaboratorService) ReplaceCollaborator(ctx context.Context, collaboratorID string, req *collaborator_dto.ReplaceCollaboratorRequest) (*collaborator_dto.CollaboratorResponse, *app_errors.AppError) {
	collaborator := &entity.CollaboratorEntity{
		ID:    collaboratorID,
		Name:  req.Name,
		Email: req.Email,
	}

	if err := s.repo.Replace(ctx, collaborator); err != nil {
		return nil, err
	}

	updated, err := s.repo.FindByID(ctx, collaboratorID)
	if err != nil {
		return nil, err
	}

	return toCollaboratorResponse(updated), nil
}

// DeleteCollaborator removes the record without checking the work-order
// ledger. Orders assigned to the collaborator keep the dangling id.
func (s *CollaboratorService) DeleteCollaborator(ctx context.Context, collaboratorID string) *app_errors.AppError {
	return s.repo.Delete(ctx, collaboratorID)
}

func toCollaboratorResponse(c *entity.CollaboratorEntity) *collaborator_dto.CollaboratorResponse {
	return &collaborator_dto.CollaboratorResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
