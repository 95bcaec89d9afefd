package auth_repo

import (
	"context"
	"errors"

	"github.com/alissonmartineli/maintenance-tech/internal/entity"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthRepo struct {
	db *pgxpool.Pool
}

func NewAuthRepo(db *pgxpool.Pool) AuthRepoContract {
	return &AuthRepo{
		db: db,
	}
}

func (r *AuthRepo) InsertAccount(ctx context.Context, account *entity.AccountEntity) *app_errors.AppError {
	query := `
	INSERT INTO accounts (
			id,
			username,
			password_hash,
			created_at
		) VALUES (
			$1,$2,$3,$4
		)
	`

	if _, err := r.db.Exec(
		ctx,
		query,
		account.ID,
		account.Username,
		account.PasswordHash,
		account.CreatedAt,
	); err != nil {
		return app_errors.MapPgxError(err)
	}

	return nil
}

func (r *AuthRepo) FindAccountByUsername(ctx context.Context, username string) (*entity.AccountEntity, *app_errors.AppError) {
	query := `
	SELECT id, username, password_hash, created_at
	FROM accounts
	WHERE username = $1
	LIMIT 1;
	`

	var row entity.AccountEntity
	if err := r.db.QueryRow(ctx, query, username).Scan(&row.ID, &row.Username, &row.PasswordHash, &row.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "account_not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return &row, nil
}
