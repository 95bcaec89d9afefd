package tx

import (
	"context"

	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
)

// Tx is the slice of a database transaction the services need. Repos receive
// it on their *Tx methods; the service owns begin/commit/rollback so one
// request maps to one transaction (work order updates and toggles).
type Tx interface {
	Commit(ctx context.Context) *app_errors.AppError
	Rollback(ctx context.Context) *app_errors.AppError
}

type TxManager interface {
	Begin(ctx context.Context) (Tx, *app_errors.AppError)
}
