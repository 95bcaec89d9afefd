package workorder_case

import (
	"sort"
	"time"

	workorder_dto "github.com/alissonmartineli/maintenance-tech/internal/dtos/workorder-dto"
	"github.com/alissonmartineli/maintenance-tech/internal/entity"
)

// The read-side engine: joins already-fetched work orders against the
// collaborator and equipment sets, derives each status against "now" and
// keeps the list chronologically sorted. Everything here is pure so the
// lifecycle rules are testable without a database.

// BuildWorkOrderViews denormalizes the given work orders. The result is
// sorted ascending by date; records sharing a date keep their relative input
// order.
func BuildWorkOrderViews(
	workOrders []entity.WorkOrderEntity,
	collaborators []entity.CollaboratorEntity,
	equipments []entity.EquipmentEntity,
	now time.Time,
) []workorder_dto.WorkOrderView {
	collaboratorsByID := make(map[string]*entity.CollaboratorEntity, len(collaborators))
	for i := range collaborators {
		collaboratorsByID[collaborators[i].ID] = &collaborators[i]
	}

	equipmentsByID := make(map[string]*entity.EquipmentEntity, len(equipments))
	for i := range equipments {
		equipmentsByID[equipments[i].ID] = &equipments[i]
	}

	views := make([]workorder_dto.WorkOrderView, 0, len(workOrders))
	for i := range workOrders {
		w := &workOrders[i]
		views = append(views, workorder_dto.WorkOrderView{
			ID:          w.ID,
			Date:        w.Date,
			Responsible: resolveResponsible(w.ResponsibleID, collaboratorsByID),
			Type:        w.Type.Meta(),
			Equipment:   resolveEquipment(w.EquipmentID, equipmentsByID),
			Description: w.Description,
			Report:      w.Report,
			Done:        w.Done,
			Status:      entity.DeriveStatus(w.Date, w.Done, now),
		})
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Date.Before(views[j].Date)
	})

	return views
}

// resolveResponsible maps a stored collaborator id to its record. A dangling
// id resolves to an explicit missing ref with a display fallback instead of
// faulting at render time.
func resolveResponsible(id string, byID map[string]*entity.CollaboratorEntity) entity.CollaboratorRef {
	if c, ok := byID[id]; ok {
		return entity.CollaboratorRef{
			ID:    c.ID,
			Name:  c.Name,
			Email: c.Email,
		}
	}

	return entity.CollaboratorRef{
		ID:      id,
		Name:    "Unknown",
		Missing: true,
	}
}

func resolveEquipment(id string, byID map[string]*entity.EquipmentEntity) entity.EquipmentRef {
	if e, ok := byID[id]; ok {
		return entity.EquipmentRef{
			ID:          e.ID,
			Code:        e.Code,
			Description: e.Description,
		}
	}

	return entity.EquipmentRef{
		ID:          id,
		Description: "Unknown",
		Missing:     true,
	}
}

// Summarize computes the dashboard counts. By construction
// in_progress + completed = total and every overdue order is in progress.
func Summarize(workOrders []entity.WorkOrderEntity, now time.Time) workorder_dto.WorkOrderSummary {
	summary := workorder_dto.WorkOrderSummary{Total: len(workOrders)}

	for i := range workOrders {
		w := &workOrders[i]
		if w.Done {
			summary.Completed++
			continue
		}

		summary.InProgress++
		if entity.DeriveStatus(w.Date, w.Done, now) == entity.StatusOverdue {
			summary.Overdue++
		}
	}

	return summary
}
