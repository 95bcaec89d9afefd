package equipment_repo

import (
	"context"
	"errors"

	"github.com/alissonmartineli/maintenance-tech/internal/entity"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EquipmentRepo struct {
	db *pgxpool.Pool
}

func NewEquipmentRepo(db *pgxpool.Pool) EquipmentRepoContract {
	return &EquipmentRepo{
		db: db,
	}
}

func (r *EquipmentRepo) Insert(ctx context.Context, equipment *entity.EquipmentEntity) *app_errors.AppError {
	query := `
	INSERT INTO equipments (
			id,
			code,
			description,
			manufacturer,
			brand,
			model,
			created_at
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7
		)
	`

	if _, err := r.db.Exec(
		ctx,
		query,
		equipment.ID,
		equipment.Code,
		equipment.Description,
		equipment.Manufacturer,
		equipment.Brand,
		equipment.Model,
		equipment.CreatedAt,
	); err != nil {
		return app_errors.MapPgxError(err)
	}

	return nil
}

func (r *EquipmentRepo) FindByID(ctx context.Context, equipmentID string) (*entity.EquipmentEntity, *app_errors.AppError) {
	query := `
	SELECT id, code, description, manufacturer, brand, model, created_at, updated_at
	FROM equipments
	WHERE id = $1;
	`

	var row entity.EquipmentEntity
	if err := r.db.QueryRow(ctx, query, equipmentID).Scan(&row.ID, &row.Code, &row.Description, &row.Manufacturer, &row.Brand, &row.Model, &row.CreatedAt, &row.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "equipment_not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return &row, nil
}

// List returns every equipment in insertion order. Display ordering (e.g. by
// description in locale order) is the caller's concern.
func (r *EquipmentRepo) List(ctx context.Context) ([]entity.EquipmentEntity, *app_errors.AppError) {
	query := `
	SELECT id, code, description, manufacturer, brand, model, created_at, updated_at
	FROM equipments
	ORDER BY created_at ASC;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	equipments := []entity.EquipmentEntity{}
	for rows.Next() {
		var e entity.EquipmentEntity
		if err := rows.Scan(&e.ID, &e.Code, &e.Description, &e.Manufacturer, &e.Brand, &e.Model, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		equipments = append(equipments, e)
	}

	return equipments, nil
}

// Replace is a full-attribute replace; the id is immutable. Returns not-found
// without touching anything when the id has no record.
func (r *EquipmentRepo) Replace(ctx context.Context, equipment *entity.EquipmentEntity) *app_errors.AppError {
	query := `
	UPDATE equipments
	SET code = $2,
		description = $3,
		manufacturer = $4,
		brand = $5,
		model = $6,
		updated_at = now()
	WHERE id = $1
	RETURNING id;
	`

	var id string
	if err := r.db.QueryRow(
		ctx,
		query,
		equipment.ID,
		equipment.Code,
		equipment.Description,
		equipment.Manufacturer,
		equipment.Brand,
		equipment.Model,
	).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "equipment_not_found", nil)
		}
		return app_errors.MapPgxError(err)
	}

	return nil
}

// Delete removes the equipment only. Work orders referencing it are left in
// place; their equipment reference dangles and the read side resolves it as
// missing.
func (r *EquipmentRepo) Delete(ctx context.Context, equipmentID string) *app_errors.AppError {
	query := `
	DELETE FROM equipments
	WHERE id = $1;
	`

	if _, err := r.db.Exec(ctx, query, equipmentID); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return nil
}
