package equipment_dto

import (
	"time"

	workorder_dto "github.com/alissonmartineli/maintenance-tech/internal/dtos/workorder-dto"
)

type EquipmentResponse struct {
	ID           string     `json:"id"`
	Code         string     `json:"code"`
	Description  string     `json:"description"`
	Manufacturer *string    `json:"manufacturer,omitempty"`
	Brand        *string    `json:"brand,omitempty"`
	Model        *string    `json:"model,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// UptimeMetrics mirrors the "Histórico" card of the dashboard. The source
// system hardcodes these figures; real measurement is an extension point, so
// the API serves the same static placeholders.
type UptimeMetrics struct {
	HoursRunning int `json:"hours_running"`
	HoursStopped int `json:"hours_stopped"`
}

// EquipmentHistoryResponse is the per-equipment view: the equipment record,
// its work orders joined and classified, the counts over them and the
// placeholder uptime metrics.
type EquipmentHistoryResponse struct {
	Equipment  EquipmentResponse              `json:"equipment"`
	WorkOrders []workorder_dto.WorkOrderView  `json:"work_orders"`
	Summary    workorder_dto.WorkOrderSummary `json:"summary"`
	Uptime     UptimeMetrics                  `json:"uptime"`
}
