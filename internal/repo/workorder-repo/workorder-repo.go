package workorder_repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alissonmartineli/maintenance-tech/internal/abstraction/tx"
	"github.com/alissonmartineli/maintenance-tech/internal/entity"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const workOrderColumns = `id, date, responsible_id, type, equipment_id, description, report, done, created_at, updated_at, last_reminder_at`

type WorkOrderRepo struct {
	db *pgxpool.Pool
}

func NewWorkOrderRepo(db *pgxpool.Pool) WorkOrderRepoContract {
	return &WorkOrderRepo{
		db: db,
	}
}

func scanWorkOrder(row pgx.Row, w *entity.WorkOrderEntity) error {
	return row.Scan(&w.ID, &w.Date, &w.ResponsibleID, &w.Type, &w.EquipmentID, &w.Description, &w.Report, &w.Done, &w.CreatedAt, &w.UpdatedAt, &w.LastReminderAt)
}

func (r *WorkOrderRepo) Insert(ctx context.Context, workOrder *entity.WorkOrderEntity) *app_errors.AppError {
	query := `
	INSERT INTO work_orders (
			id,
			date,
			responsible_id,
			type,
			equipment_id,
			description,
			report,
			done,
			created_at
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9
		)
	`

	if _, err := r.db.Exec(
		ctx,
		query,
		workOrder.ID,
		workOrder.Date,
		workOrder.ResponsibleID,
		workOrder.Type,
		workOrder.EquipmentID,
		workOrder.Description,
		workOrder.Report,
		workOrder.Done,
		workOrder.CreatedAt,
	); err != nil {
		return app_errors.MapPgxError(err)
	}

	return nil
}

func (r *WorkOrderRepo) FindByID(ctx context.Context, workOrderID string) (*entity.WorkOrderEntity, *app_errors.AppError) {
	query := fmt.Sprintf(`
	SELECT %s FROM work_orders
	WHERE id = $1;
	`, workOrderColumns)

	var row entity.WorkOrderEntity
	if err := scanWorkOrder(r.db.QueryRow(ctx, query, workOrderID), &row); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "work_order_not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return &row, nil
}

// ListAll returns the whole ledger in insertion order; equal-date ordering
// for display is resolved by the stable sort on the read side.
func (r *WorkOrderRepo) ListAll(ctx context.Context) ([]entity.WorkOrderEntity, *app_errors.AppError) {
	query := fmt.Sprintf(`
	SELECT %s FROM work_orders
	ORDER BY created_at ASC;
	`, workOrderColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	return collectWorkOrders(rows)
}

func (r *WorkOrderRepo) ListByEquipment(ctx context.Context, equipmentID string) ([]entity.WorkOrderEntity, *app_errors.AppError) {
	query := fmt.Sprintf(`
	SELECT %s FROM work_orders
	WHERE equipment_id = $1
	ORDER BY created_at ASC;
	`, workOrderColumns)

	rows, err := r.db.Query(ctx, query, equipmentID)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	return collectWorkOrders(rows)
}

func collectWorkOrders(rows pgx.Rows) ([]entity.WorkOrderEntity, *app_errors.AppError) {
	workOrders := []entity.WorkOrderEntity{}
	for rows.Next() {
		var w entity.WorkOrderEntity
		if err := scanWorkOrder(rows, &w); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		workOrders = append(workOrders, w)
	}

	return workOrders, nil
}

// UpdateFieldsTx partially replaces only the named fields. Done and report
// never change through this path.
func (r *WorkOrderRepo) UpdateFieldsTx(ctx context.Context, t tx.Tx, workOrderID string, model entity.WorkOrderUpdate) (*entity.WorkOrderEntity, *app_errors.AppError) {
	pgxTx := t.(*tx.PgxTx).Tx
	setClauses := make([]string, 0)
	args := make([]any, 0)
	argPos := 1

	if model.Date != nil {
		setClauses = append(setClauses, fmt.Sprintf("date = $%d", argPos))
		args = append(args, *model.Date)
		argPos++
	}

	if model.ResponsibleID != nil {
		setClauses = append(setClauses, fmt.Sprintf("responsible_id = $%d", argPos))
		args = append(args, *model.ResponsibleID)
		argPos++
	}

	if model.Type != nil {
		setClauses = append(setClauses, fmt.Sprintf("type = $%d", argPos))
		args = append(args, *model.Type)
		argPos++
	}

	if model.EquipmentID != nil {
		setClauses = append(setClauses, fmt.Sprintf("equipment_id = $%d", argPos))
		args = append(args, *model.EquipmentID)
		argPos++
	}

	if model.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", argPos))
		args = append(args, *model.Description)
		argPos++
	}

	if len(setClauses) == 0 {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.body_empty", fmt.Errorf("no fields to update"))
	}

	setClauses = append(setClauses, "updated_at = now()")

	query := fmt.Sprintf(`
		UPDATE work_orders
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), argPos, workOrderColumns)

	args = append(args, workOrderID)

	var workOrder entity.WorkOrderEntity
	if err := scanWorkOrder(pgxTx.QueryRow(ctx, query, args...), &workOrder); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "work_order_not_found", nil)
		}
		return nil, app_errors.MapPgxError(err)
	}

	return &workOrder, nil
}

// ToggleDoneTx flips the done flag and stores the report text under a row
// lock, so two concurrent toggles serialize instead of losing one write.
// Reopening keeps whatever report the caller sent back.
func (r *WorkOrderRepo) ToggleDoneTx(ctx context.Context, t tx.Tx, workOrderID string, report string) (*entity.WorkOrderEntity, *app_errors.AppError) {
	pgxTx := t.(*tx.PgxTx).Tx

	var done bool
	lockQuery := `
	SELECT done FROM work_orders
	WHERE id = $1
	FOR UPDATE;
	`
	if err := pgxTx.QueryRow(ctx, lockQuery, workOrderID).Scan(&done); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "work_order_not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	query := fmt.Sprintf(`
	UPDATE work_orders
	SET done = $2,
		report = $3,
		updated_at = now()
	WHERE id = $1
	RETURNING %s;
	`, workOrderColumns)

	var workOrder entity.WorkOrderEntity
	if err := scanWorkOrder(pgxTx.QueryRow(ctx, query, workOrderID, !done, report), &workOrder); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return &workOrder, nil
}

// ListShouldRemindOverdue lists open work orders past their date that were
// not reminded in the last 24 hours, joined with the responsible contact.
// Dangling responsible references are skipped on purpose: there is nobody to
// mail.
func (r *WorkOrderRepo) ListShouldRemindOverdue(ctx context.Context) ([]entity.ReminderWorkOrder, *app_errors.AppError) {
	query := `
	SELECT
		w.id, w.date, w.description,
		COALESCE(e.description, 'Unknown'),
		c.name, c.email,
		w.last_reminder_at
	FROM work_orders w
	JOIN collaborators c ON c.id = w.responsible_id
	LEFT JOIN equipments e ON e.id = w.equipment_id
	WHERE w.done = false
		AND w.date < date_trunc('day', now())
		AND (w.last_reminder_at IS NULL OR w.last_reminder_at < now() - interval '24 hours');
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	reminders := []entity.ReminderWorkOrder{}
	for rows.Next() {
		var m entity.ReminderWorkOrder
		if err := rows.Scan(&m.ID, &m.Date, &m.Description, &m.EquipmentDescription, &m.ResponsibleName, &m.ResponsibleEmail, &m.LastReminderAt); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		reminders = append(reminders, m)
	}

	return reminders, nil
}

func (r *WorkOrderRepo) BatchUpdateReminderOverdue(ctx context.Context, t tx.Tx, workOrderIDs []string) *app_errors.AppError {
	pgxTx := t.(*tx.PgxTx).Tx
	query := `
	UPDATE work_orders
	SET last_reminder_at = now()
	WHERE id = ANY($1);
	`

	if _, err := pgxTx.Exec(ctx, query, workOrderIDs); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return nil
}
