package entity

import "time"

// EquipmentEntity represents a registered piece of equipment in the database.
type EquipmentEntity struct {
	ID           string     `json:"id"`
	Code         string     `json:"code"`
	Description  string     `json:"description"`
	Manufacturer *string    `json:"manufacturer,omitempty"`
	Brand        *string    `json:"brand,omitempty"`
	Model        *string    `json:"model,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// EquipmentRef is the resolved equipment reference on a work-order view.
// Missing marks a dangling id: the work order still stores the id but the
// equipment record no longer exists.
type EquipmentRef struct {
	ID          string `json:"id"`
	Code        string `json:"code,omitempty"`
	Description string `json:"description"`
	Missing     bool   `json:"missing,omitempty"`
}
