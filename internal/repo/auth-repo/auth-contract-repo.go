package auth_repo

import (
	"context"

	"github.com/alissonmartineli/maintenance-tech/internal/entity"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
)

type AuthRepoContract interface {
	InsertAccount(ctx context.Context, account *entity.AccountEntity) *app_errors.AppError
	FindAccountByUsername(ctx context.Context, username string) (*entity.AccountEntity, *app_errors.AppError)
}
