package collaborator_case

import (
	"context"
	"testing"

	collaborator_dto "github.com/alissonmartineli/maintenance-tech/internal/dtos/collaborator-dto"
	"github.com/alissonmartineli/maintenance-tech/internal/entity"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateCollaborator_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockCollaboratorRepo)
	service := &CollaboratorService{repo: repo}

	req := &collaborator_dto.CreateCollaboratorRequest{
		Name:  "Maria Souza",
		Email: "maria@fabrica.com",
	}

	repo.On("Insert", ctx, mock.MatchedBy(func(c *entity.CollaboratorEntity) bool {
		return c.ID != "" && c.Name == "Maria Souza" && c.Email == "maria@fabrica.com"
	})).Return((*app_errors.AppError)(nil))

	resp, err := service.CreateCollaborator(ctx, req)

	assert.Nil(t, err)
	assert.Equal(t, "Maria Souza", resp.Name)

	repo.AssertExpectations(t)
}

// Duplicate emails are allowed: two collaborators may share an inbox.
func TestCreateCollaborator_DuplicateEmailAllowed(t *testing.T) {
	ctx := context.Background()

	repo := new(MockCollaboratorRepo)
	service := &CollaboratorService{repo: repo}

	req := &collaborator_dto.CreateCollaboratorRequest{
		Name:  "João Lima",
		Email: "manutencao@fabrica.com",
	}

	repo.On("Insert", ctx, mock.Anything).Return((*app_errors.AppError)(nil))

	resp, err := service.CreateCollaborator(ctx, req)

	assert.Nil(t, err)
	assert.Equal(t, "manutencao@fabrica.com", resp.Email)
}

func TestListCollaborators_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockCollaboratorRepo)
	service := &CollaboratorService{repo: repo}

	collaborators := []entity.CollaboratorEntity{
		{ID: "collab-1", Name: "Maria Souza"},
		{ID: "collab-2", Name: "João Lima"},
	}
	repo.On("List", ctx).Return(collaborators, (*app_errors.AppError)(nil))

	resp, err := service.ListCollaborators(ctx)

	assert.Nil(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "Maria Souza", resp[0].Name)
}

func TestGetCollaborator_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := new(MockCollaboratorRepo)
	service := &CollaboratorService{repo: repo}

	notFound := app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "collaborator_not_found", nil)
	repo.On("FindByID", ctx, "collab-999").Return((*entity.CollaboratorEntity)(nil), notFound)

	resp, err := service.GetCollaborator(ctx, "collab-999")

	assert.Nil(t, resp)
	assert.Equal(t, notFound, err)
}

func TestReplaceCollaborator_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := new(MockCollaboratorRepo)
	service := &CollaboratorService{repo: repo}

	req := &collaborator_dto.ReplaceCollaboratorRequest{
		Name:  "Maria Souza",
		Email: "maria@fabrica.com",
	}

	notFound := app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "collaborator_not_found", nil)
	repo.On("Replace", ctx, mock.Anything).Return(notFound)

	resp, err := service.ReplaceCollaborator(ctx, "collab-999", req)

	assert.Nil(t, resp)
	assert.Equal(t, notFound, err)
}

// Deleting keeps assigned work orders; their responsible resolves as missing
// on the read side.
func TestDeleteCollaborator_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockCollaboratorRepo)
	service := &CollaboratorService{repo: repo}

	repo.On("Delete", ctx, "collab-1").Return((*app_errors.AppError)(nil))

	err := service.DeleteCollaborator(ctx, "collab-1")

	assert.Nil(t, err)
	repo.AssertExpectations(t)
}
