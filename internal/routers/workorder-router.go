package routers

import (
	workorder_handlers "github.com/alissonmartineli/maintenance-tech/internal/handlers/workorder"
	"github.com/alissonmartineli/maintenance-tech/internal/i18n"
	"github.com/alissonmartineli/maintenance-tech/internal/middleware"
	"github.com/alissonmartineli/maintenance-tech/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func WorkOrderRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker) {
	r := api.Group("/workorders", middleware.AuthMiddleware(paseto, redis))
	workOrderHandler := workorder_handlers.NewWorkOrderHandler(db, redis, i18n)

	r.Get("/", workOrderHandler.ListWorkOrders)
	r.Post("/", workOrderHandler.CreateWorkOrder)
	// registered before /:id so "summary" is not parsed as an id
	r.Get("/summary", workOrderHandler.Summary)
	r.Get("/:id", workOrderHandler.GetWorkOrder)
	r.Put("/:id", workOrderHandler.UpdateWorkOrder)
	r.Post("/:id/toggle", workOrderHandler.ToggleDone)
}
