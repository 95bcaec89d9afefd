package workorder_handlers

import (
	workorder_dto "github.com/alissonmartineli/maintenance-tech/internal/dtos/workorder-dto"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
	"github.com/alissonmartineli/maintenance-tech/internal/handlers"
	internal_i18n "github.com/alissonmartineli/maintenance-tech/internal/i18n"
	workorder_case "github.com/alissonmartineli/maintenance-tech/internal/use-cases/workorder-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type WorkOrderHandler struct {
	validator *validator.Validate
	service   workorder_case.WorkOrderServiceContract
	i18n      *internal_i18n.I18nService
}

func NewWorkOrderHandler(db *pgxpool.Pool, redis *redis.Client, i18n *internal_i18n.I18nService) *WorkOrderHandler {
	validate := validator.New()
	validate.RegisterValidation("workOrderType", workorder_dto.IsValidWorkOrderType)
	return &WorkOrderHandler{
		validator: validate,
		service:   workorder_case.NewWorkOrderService(db, redis),
		i18n:      i18n,
	}
}

// ListWorkOrders returns the denormalized ledger: references resolved, status
// derived, sorted by date.
func (h *WorkOrderHandler) ListWorkOrders(c *fiber.Ctx) error {
	resp, err := h.service.ListWorkOrders(c.Context())
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_list_work_orders", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *WorkOrderHandler) CreateWorkOrder(c *fiber.Ctx) error {
	// 1. parse body
	var req *workorder_dto.CreateWorkOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	// 2. validate
	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	// 3. call service
	resp, err := h.service.CreateWorkOrder(c.Context(), req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_create_work_order", nil), resp, reqID)
	if err := c.Status(fiber.StatusCreated).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *WorkOrderHandler) GetWorkOrder(c *fiber.Ctx) error {
	workOrderID, err := handlers.GetParamWorkOrderID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.GetWorkOrder(c.Context(), workOrderID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_get_work_order", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *WorkOrderHandler) UpdateWorkOrder(c *fiber.Ctx) error {
	workOrderID, err := handlers.GetParamWorkOrderID(c, h.validator)
	if err != nil {
		return err
	}

	var req *workorder_dto.UpdateWorkOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.UpdateWorkOrder(c.Context(), workOrderID, req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_update_work_order", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

// ToggleDone flips the done flag. The body carries the report: filled in when
// completing, echoed back when reopening.
func (h *WorkOrderHandler) ToggleDone(c *fiber.Ctx) error {
	workOrderID, err := handlers.GetParamWorkOrderID(c, h.validator)
	if err != nil {
		return err
	}

	var req *workorder_dto.ToggleWorkOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.ToggleDone(c.Context(), workOrderID, req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_toggle_work_order", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *WorkOrderHandler) Summary(c *fiber.Ctx) error {
	resp, err := h.service.Summary(c.Context())
	if err != nil {
		return err
	}

	// The counts shift at midnight, keep client caching short.
	c.Set("Cache-Control", "private, max-age=10")
	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_summary", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

// EquipmentHistory serves GET /equipments/:id/workorders: the equipment, its
// orders, its own counts and the uptime card.
func (h *WorkOrderHandler) EquipmentHistory(c *fiber.Ctx) error {
	equipmentID, err := handlers.GetParamEquipmentID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.EquipmentHistory(c.Context(), equipmentID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_equipment_history", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}
