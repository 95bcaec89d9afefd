package entity

import "time"

// WorkOrderEntity represents a maintenance work order in the database.
// Date is the scheduled calendar day, not an instant. Report is the free text
// of the work performed, captured when the order is marked done.
type WorkOrderEntity struct {
	ID             string        `json:"id"`
	Date           time.Time     `json:"date"`
	ResponsibleID  string        `json:"responsible_id"`
	Type           WorkOrderType `json:"type"`
	EquipmentID    string        `json:"equipment_id"`
	Description    string        `json:"description"`
	Report         string        `json:"report"`
	Done           bool          `json:"done"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      *time.Time    `json:"updated_at,omitempty"`
	LastReminderAt *time.Time    `json:"last_reminder_at,omitempty"`
}

// WorkOrderUpdate carries the editable fields of a work order. Done and report
// are deliberately absent: they only change through the toggle operation.
type WorkOrderUpdate struct {
	Date          *time.Time `json:"date,omitempty"`
	ResponsibleID *string    `json:"responsible_id,omitempty"`
	Type          *string    `json:"type,omitempty"`
	EquipmentID   *string    `json:"equipment_id,omitempty"`
	Description   *string    `json:"description,omitempty"`
}

// ReminderWorkOrder is the projection the overdue-reminder worker operates on,
// joined with the responsible collaborator's contact.
type ReminderWorkOrder struct {
	ID                   string     `json:"id"`
	Date                 time.Time  `json:"date"`
	Description          string     `json:"description"`
	EquipmentDescription string     `json:"equipment_description"`
	ResponsibleName      string     `json:"responsible_name"`
	ResponsibleEmail     string     `json:"responsible_email"`
	LastReminderAt       *time.Time `json:"last_reminder_at,omitempty"`
}

type WorkOrderType string

const (
	TypeCorrective WorkOrderType = "corrective"
	TypePredictive WorkOrderType = "predictive"
	TypePreventive WorkOrderType = "preventive"
)

func (t WorkOrderType) IsValid() bool {
	switch t {
	case TypeCorrective, TypePredictive, TypePreventive:
		return true
	}

	return false
}

// TypeMeta is the display triple for a work-order type (label + chip tone).
type TypeMeta struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Tone  string `json:"tone"`
}

// Meta resolves the display triple. An unknown type code gets the same
// fallback as a dangling reference instead of faulting at render time.
func (t WorkOrderType) Meta() TypeMeta {
	switch t {
	case TypeCorrective:
		return TypeMeta{Value: string(t), Label: "Corretiva", Tone: "error"}
	case TypePredictive:
		return TypeMeta{Value: string(t), Label: "Preditiva", Tone: "info"}
	case TypePreventive:
		return TypeMeta{Value: string(t), Label: "Preventiva", Tone: "success"}
	}

	return TypeMeta{Value: string(t), Label: "Unknown", Tone: "default"}
}
