package equipment_dto

type ParamEquipmentID struct {
	ID string `params:"id" validate:"required,uuid"`
}

// CreateEquipmentRequest registers a new piece of equipment. Code and
// description are required server-side; the code does not have to be unique.
type CreateEquipmentRequest struct {
	Code         string  `json:"code" validate:"required,max=50"`
	Description  string  `json:"description" validate:"required,max=200"`
	Manufacturer *string `json:"manufacturer,omitempty" validate:"omitempty,max=100"`
	Brand        *string `json:"brand,omitempty" validate:"omitempty,max=100"`
	Model        *string `json:"model,omitempty" validate:"omitempty,max=100"`
}

// ReplaceEquipmentRequest is a full-attribute replace; same rules as create.
type ReplaceEquipmentRequest struct {
	Code         string  `json:"code" validate:"required,max=50"`
	Description  string  `json:"description" validate:"required,max=200"`
	Manufacturer *string `json:"manufacturer,omitempty" validate:"omitempty,max=100"`
	Brand        *string `json:"brand,omitempty" validate:"omitempty,max=100"`
	Model        *string `json:"model,omitempty" validate:"omitempty,max=100"`
}
