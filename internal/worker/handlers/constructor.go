package worker_handler

import (
	"github.com/alissonmartineli/maintenance-tech/internal/abstraction/tx"
	"github.com/alissonmartineli/maintenance-tech/internal/mail"
	workorder_repo "github.com/alissonmartineli/maintenance-tech/internal/repo/workorder-repo"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WorkerHandler struct {
	db        *pgxpool.Pool
	repo      workorder_repo.WorkOrderRepoContract
	txManager tx.TxManager
	mailer    mail.Mailer
}

func NewWorkerHandler(db *pgxpool.Pool, mailer mail.Mailer) *WorkerHandler {
	return &WorkerHandler{
		db:        db,
		repo:      workorder_repo.NewWorkOrderRepo(db),
		txManager: tx.NewPgxTxManager(db),
		mailer:    mailer,
	}
}
