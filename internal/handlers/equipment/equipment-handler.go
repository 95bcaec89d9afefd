package equipment_handlers

import (
	equipment_dto "github.com/alissonmartineli/maintenance-tech/internal/dtos/equipment-dto"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
	"github.com/alissonmartineli/maintenance-tech/internal/handlers"
	internal_i18n "github.com/alissonmartineli/maintenance-tech/internal/i18n"
	equipment_case "github.com/alissonmartineli/maintenance-tech/internal/use-cases/equipment-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type EquipmentHandler struct {
	validator *validator.Validate
	service   equipment_case.EquipmentServiceContract
	i18n      *internal_i18n.I18nService
}

func NewEquipmentHandler(db *pgxpool.Pool, redis *redis.Client, i18n *internal_i18n.I18nService) *EquipmentHandler {
	return &EquipmentHandler{
		validator: validator.New(),
		service:   equipment_case.NewEquipmentService(db, redis),
		i18n:      i18n,
	}
}

func (h *EquipmentHandler) ListEquipments(c *fiber.Ctx) error {
	resp, err := h.service.ListEquipments(c.Context())
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_list_equipments", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *EquipmentHandler) CreateEquipment(c *fiber.Ctx) error {
	// 1. parse body
	var req *equipment_dto.CreateEquipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	// 2. validate
	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	// 3. call service
	resp, err := h.service.CreateEquipment(c.Context(), req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_create_equipment", nil), resp, reqID)
	if err := c.Status(fiber.StatusCreated).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *EquipmentHandler) GetEquipment(c *fiber.Ctx) error {
	equipmentID, err := handlers.GetParamEquipmentID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.GetEquipment(c.Context(), equipmentID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_get_equipment", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *EquipmentHandler) ReplaceEquipment(c *fiber.Ctx) error {
	equipmentID, err := handlers.GetParamEquipmentID(c, h.validator)
	if err != nil {
		return err
	}

	var req *equipment_dto.ReplaceEquipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.ReplaceEquipment(c.Context(), equipmentID, req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_update_equipment", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *EquipmentHandler) DeleteEquipment(c *fiber.Ctx) error {
	equipmentID, err := handlers.GetParamEquipmentID(c, h.validator)
	if err != nil {
		return err
	}

	if err := h.service.DeleteEquipment(c.Context(), equipmentID); err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_delete_equipment", nil), "OK", reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}
