package collaborator_repo

import (
	"context"
	"errors"

	"github.com/alissonmartineli/maintenance-tech/internal/entity"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CollaboratorRepo struct {
	db *pgxpool.Pool
}

func NewCollaboratorRepo(db *pgxpool.Pool) CollaboratorRepoContract {
	return &CollaboratorRepo{
		db: db,
	}
}

func (r *CollaboratorRepo) Insert(ctx context.Context, collaborator *entity.CollaboratorEntity) *app_errors.AppError {
	// No uniqueness on name or email, deliberately.
	query := `
	INSERT INTO collaborators (
			id,
			name,
			email,
			created_at
		) VALUES (
			$1,$2,$3,$4
		)
	`

	if _, err := r.db.Exec(
		ctx,
		query,
		collaborator.ID,
		collaborator.Name,
		collaborator.Email,
		collaborator.CreatedAt,
	); err != nil {
		return app_errors.MapPgxError(err)
	}

	return nil
}

func (r *CollaboratorRepo) FindByID(ctx context.Context, collaboratorID string) (*entity.CollaboratorEntity, *app_errors.AppError) {
	query := `
	SELECT id, name, email, created_at, updated_at
	FROM collaborators
	WHERE id = $1;
	`

	var row entity.CollaboratorEntity
	if err := r.db.QueryRow(ctx, query, collaboratorID).Scan(&row.ID, &row.Name, &row.Email, &row.CreatedAt, &row.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "collaborator_not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return &row, nil
}

func (r *CollaboratorRepo) List(ctx context.Context) ([]entity.CollaboratorEntity, *app_errors.AppError) {
	query := `
	SELECT id, name, email, created_at, updated_at
	FROM collaborators
	ORDER BY created_at ASC;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	collaborators := []entity.CollaboratorEntity{}
	for rows.Next() {
		var c entity.CollaboratorEntity
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		collaborators = append(collaborators, c)
	}

	return collaborators, nil
}

func (r *CollaboratorRepo) Replace(ctx context.Context, collaborator *entity.CollaboratorEntity) *app_errors.AppError {
	query := `
	UPDATE collaborators
	SET name = $2,
		email = $3,
		updated_at = now()
	WHERE id = $1
	RETURNING id;
	`

	var id string
	if err := r.db.QueryRow(ctx, query, collaborator.ID, collaborator.Name, collaborator.Email).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "collaborator_not_found", nil)
		}
		return app_errors.MapPgxError(err)
	}

	return nil
}

// Delete has no referential check against the work-order ledger; existing
// work orders keep the dangling responsible id and the read side tolerates it.
func (r *CollaboratorRepo) Delete(ctx context.Context, collaboratorID string) *app_errors.AppError {
	query := `
	DELETE FROM collaborators
	WHERE id = $1;
	`

	if _, err := r.db.Exec(ctx, query, collaboratorID); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return nil
}
