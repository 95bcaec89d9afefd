package handlers

import (
	"github.com/alissonmartineli/maintenance-tech/internal/dtos"
	collaborator_dto "github.com/alissonmartineli/maintenance-tech/internal/dtos/collaborator-dto"
	equipment_dto "github.com/alissonmartineli/maintenance-tech/internal/dtos/equipment-dto"
	workorder_dto "github.com/alissonmartineli/maintenance-tech/internal/dtos/workorder-dto"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CreateResponse builds the standardized WebResponse envelope.
func CreateResponse[T any](message string, data T, requestID string, details ...any) dtos.WebResponse[T] {
	return dtos.WebResponse[T]{
		Message:   message,
		Data:      data,
		RequestID: requestID,
		Details:   details,
	}
}

func GetAccountID(c *fiber.Ctx) (string, *app_errors.AppError) {
	accountID, ok := c.Locals("account_id").(string)
	if !ok || accountID == "" {
		return "", app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}

	return accountID, nil
}

func GetRequestID(c *fiber.Ctx) string {
	reqID, ok := c.Locals("request_id").(string)
	if !ok {
		reqID = "unknown"
	}
	return reqID
}

func GetParamEquipmentID(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param equipment_dto.ParamEquipmentID
	if err := c.ParamsParser(&param); err != nil {
		return "", app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := v.Struct(param); err != nil {
		return "", app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "equipment_not_found", err)
	}
	return param.ID, nil
}

func GetParamCollaboratorID(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param collaborator_dto.ParamCollaboratorID
	if err := c.ParamsParser(&param); err != nil {
		return "", app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := v.Struct(param); err != nil {
		return "", app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "collaborator_not_found", err)
	}
	return param.ID, nil
}

func GetParamWorkOrderID(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param workorder_dto.ParamWorkOrderID
	if err := c.ParamsParser(&param); err != nil {
		return "", app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := v.Struct(param); err != nil {
		return "", app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "work_order_not_found", err)
	}
	return param.ID, nil
}
