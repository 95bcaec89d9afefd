package collaborator_handlers

import (
	collaborator_dto "github.com/alissonmartineli/maintenance-tech/internal/dtos/collaborator-dto"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
	"github.com/alissonmartineli/maintenance-tech/internal/handlers"
	internal_i18n "github.com/alissonmartineli/maintenance-tech/internal/i18n"
	collaborator_case "github.com/alissonmartineli/maintenance-tech/internal/use-cases/collaborator-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// CollaboratorHandler serves the team registry. The routes live under /users
// for compatibility with the dashboard client.
type CollaboratorHandler struct {
	validator *validator.Validate
	service   collaborator_case.CollaboratorServiceContract
	i18n      *internal_i18n.I18nService
}

func NewCollaboratorHandler(db *pgxpool.Pool, redis *redis.Client, i18n *internal_i18n.I18nService) *CollaboratorHandler {
	return &CollaboratorHandler{
		validator: validator.New(),
		service:   collaborator_case.NewCollaboratorService(db, redis),
		i18n:      i18n,
	}
}

func (h *CollaboratorHandler) ListCollaborators(c *fiber.Ctx) error {
	resp, err := h.service.ListCollaborators(c.Context())
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_list_collaborators", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *CollaboratorHandler) CreateCollaborator(c *fiber.Ctx) error {
	var req *collaborator_dto.CreateCollaboratorRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.CreateCollaborator(c.Context(), req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_create_collaborator", nil), resp, reqID)
	if err := c.Status(fiber.StatusCreated).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *CollaboratorHandler) GetCollaborator(c *fiber.Ctx) error {
	collaboratorID, err := handlers.GetParamCollaboratorID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.GetCollaborator(c.Context(), collaboratorID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_get_collaborator", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *CollaboratorHandler) ReplaceCollaborator(c *fiber.Ctx) error {
	collaboratorID, err := handlers.GetParamCollaboratorID(c, h.validator)
	if err != nil {
		return err
	}

	var req *collaborator_dto.ReplaceCollaboratorRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.ReplaceCollaborator(c.Context(), collaboratorID, req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_update_collaborator", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *CollaboratorHandler) DeleteCollaborator(c *fiber.Ctx) error {
	collaboratorID, err := handlers.GetParamCollaboratorID(c, h.validator)
	if err != nil {
		return err
	}

	if err := h.service.DeleteCollaborator(c.Context(), collaboratorID); err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_delete_collaborator", nil), "OK", reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}
