package workorder_dto

import (
	"time"

	"github.com/alissonmartineli/maintenance-tech/internal/entity"
	"github.com/go-playground/validator/v10"
)

type ParamWorkOrderID struct {
	ID string `params:"id" validate:"required,uuid"`
}

// CreateWorkOrderRequest opens a work order. The server forces done=false and
// an empty report regardless of what the caller sends.
type CreateWorkOrderRequest struct {
	Date          time.Time `json:"date" validate:"required"`
	ResponsibleID string    `json:"responsible_id" validate:"required,uuid"`
	Type          string    `json:"type" validate:"required,workOrderType"`
	EquipmentID   string    `json:"equipment_id" validate:"required,uuid"`
	Description   string    `json:"description" validate:"required,max=500"`
}

// UpdateWorkOrderRequest is a partial update of the editable fields. Done and
// report are not accepted here; they only change through the toggle endpoint.
type UpdateWorkOrderRequest struct {
	Date          *time.Time `json:"date,omitempty"`
	ResponsibleID *string    `json:"responsible_id,omitempty" validate:"omitempty,uuid"`
	Type          *string    `json:"type,omitempty" validate:"omitempty,workOrderType"`
	EquipmentID   *string    `json:"equipment_id,omitempty" validate:"omitempty,uuid"`
	Description   *string    `json:"description,omitempty" validate:"omitempty,max=500"`
}

// ToggleWorkOrderRequest flips the done flag. When completing an order the
// report describes the work performed; when reopening, the caller sends the
// existing report back (the UI pre-fills it), so the field is kept either way.
type ToggleWorkOrderRequest struct {
	Report string `json:"report"`
}

func IsValidWorkOrderType(fl validator.FieldLevel) bool {
	return entity.WorkOrderType(fl.Field().String()).IsValid()
}
