package workorder_case

import (
	"context"
	"time"

	"github.com/alissonmartineli/maintenance-tech/internal/abstraction/cache"
	"github.com/alissonmartineli/maintenance-tech/internal/abstraction/tx"
	equipment_dto "github.com/alissonmartineli/maintenance-tech/internal/dtos/equipment-dto"
	workorder_dto "github.com/alissonmartineli/maintenance-tech/internal/dtos/workorder-dto"
	"github.com/alissonmartineli/maintenance-tech/internal/entity"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
	collaborator_repo "github.com/alissonmartineli/maintenance-tech/internal/repo/collaborator-repo"
	equipment_repo "github.com/alissonmartineli/maintenance-tech/internal/repo/equipment-repo"
	workorder_repo "github.com/alissonmartineli/maintenance-tech/internal/repo/workorder-repo"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const summaryCacheKey = "workorders:summary"

// The per-equipment "Histórico" card figures. The source system hardcodes
// these; real uptime measurement is an extension point.
var placeholderUptime = equipment_dto.UptimeMetrics{
	HoursRunning: 146,
	HoursStopped: 10,
}

type WorkOrderService struct {
	db               *pgxpool.Pool
	repo             workorder_repo.WorkOrderRepoContract
	equipmentRepo    equipment_repo.EquipmentRepoContract
	collaboratorRepo collaborator_repo.CollaboratorRepoContract
	txManager        tx.TxManager
	cache            cache.Cache
}

func NewWorkOrderService(db *pgxpool.Pool, redis *redis.Client) WorkOrderServiceContract {
	return &WorkOrderService{
		db:               db,
		repo:             workorder_repo.NewWorkOrderRepo(db),
		equipmentRepo:    equipment_repo.NewEquipmentRepo(db),
		collaboratorRepo: collaborator_repo.NewCollaboratorRepo(db),
		txManager:        tx.NewPgxTxManager(db),
		cache:            cache.NewRedisCache(redis),
	}
}

func (s *WorkOrderService) CreateWorkOrder(ctx context.Context, req *workorder_dto.CreateWorkOrderRequest) (*workorder_dto.WorkOrderResponse, *app_errors.AppError) {
	// References must resolve at creation time; they may dangle later if the
	// records are deleted.
	if _, err := s.equipmentRepo.FindByID(ctx, req.EquipmentID); err != nil {
		return nil, referenceError(err, "equipment_id")
	}
	if _, err := s.collaboratorRepo.FindByID(ctx, req.ResponsibleID); err != nil {
		return nil, referenceError(err, "responsible_id")
	}

	workOrderID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	// Done and report are forced regardless of what the caller sent.
	workOrder := &entity.WorkOrderEntity{
		ID:            workOrderID.String(),
		Date:          req.Date,
		ResponsibleID: req.ResponsibleID,
		Type:          entity.WorkOrderType(req.Type),
		EquipmentID:   req.EquipmentID,
		Description:   req.Description,
		Report:        "",
		Done:          false,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Insert(ctx, workOrder); err != nil {
		return nil, err
	}

	s.invalidateSummaryCache(ctx)

	return toWorkOrderResponse(workOrder), nil
}

func (s *WorkOrderService) GetWorkOrder(ctx context.Context, workOrderID string) (*workorder_dto.WorkOrderResponse, *app_errors.AppError) {
	workOrder, err := s.repo.FindByID(ctx, workOrderID)
	if err != nil {
		return nil, err
	}

	return toWorkOrderResponse(workOrder), nil
}

func (s *WorkOrderService) ListWorkOrders(ctx context.Context) ([]workorder_dto.WorkOrderView, *app_errors.AppError) {
	workOrders, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	collaborators, err := s.collaboratorRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	equipments, err := s.equipmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return BuildWorkOrderViews(workOrders, collaborators, equipments, time.Now()), nil
}

func (s *WorkOrderService) UpdateWorkOrder(ctx context.Context, workOrderID string, req *workorder_dto.UpdateWorkOrderRequest) (*workorder_dto.WorkOrderResponse, *app_errors.AppError) {
	current, err := s.repo.FindByID(ctx, workOrderID)
	if err != nil {
		return nil, err
	}

	// A completed order is read-only until reopened through the toggle.
	if current.Done {
		return nil, app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrConflict, "conflict.work_order_done", nil)
	}

	if req.EquipmentID != nil {
		if _, err := s.equipmentRepo.FindByID(ctx, *req.EquipmentID); err != nil {
			return nil, referenceError(err, "equipment_id")
		}
	}
	if req.ResponsibleID != nil {
		if _, err := s.collaboratorRepo.FindByID(ctx, *req.ResponsibleID); err != nil {
			return nil, referenceError(err, "responsible_id")
		}
	}

	model := entity.WorkOrderUpdate{
		Date:          req.Date,
		ResponsibleID: req.ResponsibleID,
		Type:          req.Type,
		EquipmentID:   req.EquipmentID,
		Description:   req.Description,
	}

	t, txErr := s.txManager.Begin(ctx)
	if txErr != nil {
		return nil, txErr
	}
	defer t.Rollback(ctx)

	workOrder, updateErr := s.repo.UpdateFieldsTx(ctx, t, workOrderID, model)
	if updateErr != nil {
		return nil, updateErr
	}

	if err := t.Commit(ctx); err != nil {
		return nil, err
	}

	s.invalidateSummaryCache(ctx)

	return toWorkOrderResponse(workOrder), nil
}

// ToggleDone flips a work order between open and done. Completing stores the
// report; reopening stores whatever report text the caller sent back (the UI
// pre-fills the existing one). The row lock in the repo serializes two
// concurrent toggles on the same order.
func (s *WorkOrderService) ToggleDone(ctx context.Context, workOrderID string, req *workorder_dto.ToggleWorkOrderRequest) (*workorder_dto.WorkOrderResponse, *app_errors.AppError) {
	t, txErr := s.txManager.Begin(ctx)
	if txErr != nil {
		return nil, txErr
	}
	defer t.Rollback(ctx)

	workOrder, toggleErr := s.repo.ToggleDoneTx(ctx, t, workOrderID, req.Report)
	if toggleErr != nil {
		return nil, toggleErr
	}

	if err := t.Commit(ctx); err != nil {
		return nil, err
	}

	s.invalidateSummaryCache(ctx)

	return toWorkOrderResponse(workOrder), nil
}

func (s *WorkOrderService) Summary(ctx context.Context) (*workorder_dto.WorkOrderSummary, *app_errors.AppError) {
	var cached workorder_dto.WorkOrderSummary
	if hit, cacheErr := s.cache.Get(ctx, summaryCacheKey, &cached); hit && cacheErr == nil {
		return &cached, nil
	}

	workOrders, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := Summarize(workOrders, time.Now())

	// Short TTL: overdue flips at midnight even without writes.
	if err := s.cache.Set(ctx, summaryCacheKey, summary, time.Minute); err != nil {
		log.Error().Err(err.Err).Msg("failed to set summary cache")
	}

	return &summary, nil
}

func (s *WorkOrderService) EquipmentHistory(ctx context.Context, equipmentID string) (*equipment_dto.EquipmentHistoryResponse, *app_errors.AppError) {
	equipment, err := s.equipmentRepo.FindByID(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	workOrders, err := s.repo.ListByEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	collaborators, err := s.collaboratorRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	return &equipment_dto.EquipmentHistoryResponse{
		Equipment: equipment_dto.EquipmentResponse{
			ID:           equipment.ID,
			Code:         equipment.Code,
			Description:  equipment.Description,
			Manufacturer: equipment.Manufacturer,
			Brand:        equipment.Brand,
			Model:        equipment.Model,
			CreatedAt:    equipment.CreatedAt,
			UpdatedAt:    equipment.UpdatedAt,
		},
		WorkOrders: BuildWorkOrderViews(workOrders, collaborators, []entity.EquipmentEntity{*equipment}, now),
		Summary:    Summarize(workOrders, now),
		Uptime:     placeholderUptime,
	}, nil
}

func (s *WorkOrderService) invalidateSummaryCache(ctx context.Context) {
	if err := s.cache.Del(ctx, summaryCacheKey); err != nil {
		log.Error().Err(err).Msg("failed to invalidate summary cache")
	}
}

// referenceError downgrades a registry not-found into a validation error on
// the offending field: the work order itself exists (or will), the request
// simply points at a record that doesn't.
func referenceError(err *app_errors.AppError, field string) *app_errors.AppError {
	if err.Type != app_errors.ErrNotFound {
		return err
	}

	return app_errors.NewValidationError([]app_errors.FieldError{{
		Field:      field,
		Reason:     "reference",
		MessageKey: "validation.invalid",
	}})
}

func toWorkOrderResponse(w *entity.WorkOrderEntity) *workorder_dto.WorkOrderResponse {
	return &workorder_dto.WorkOrderResponse{
		ID:            w.ID,
		Date:          w.Date,
		ResponsibleID: w.ResponsibleID,
		Type:          string(w.Type),
		EquipmentID:   w.EquipmentID,
		Description:   w.Description,
		Report:        w.Report,
		Done:          w.Done,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}
