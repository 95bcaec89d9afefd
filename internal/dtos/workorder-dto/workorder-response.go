package workorder_dto

import (
	"time"

	"github.com/alissonmartineli/maintenance-tech/internal/entity"
)

// WorkOrderResponse is the raw ledger record, references unresolved.
type WorkOrderResponse struct {
	ID            string     `json:"id"`
	Date          time.Time  `json:"date"`
	ResponsibleID string     `json:"responsible_id"`
	Type          string     `json:"type"`
	EquipmentID   string     `json:"equipment_id"`
	Description   string     `json:"description"`
	Report        string     `json:"report"`
	Done          bool       `json:"done"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// WorkOrderView is the denormalized read model: references resolved to their
// records (or flagged missing), type expanded to its display triple and the
// status derived from date/done. Never persisted.
type WorkOrderView struct {
	ID          string                 `json:"id"`
	Date        time.Time              `json:"date"`
	Responsible entity.CollaboratorRef `json:"responsible"`
	Type        entity.TypeMeta        `json:"type"`
	Equipment   entity.EquipmentRef    `json:"equipment"`
	Description string                 `json:"description"`
	Report      string                 `json:"report"`
	Done        bool                   `json:"done"`
	Status      entity.WorkOrderStatus `json:"status"`
}

// WorkOrderSummary holds the fleet-wide dashboard counts.
type WorkOrderSummary struct {
	Total      int `json:"total"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Overdue    int `json:"overdue"`
}
