package routers

import (
	equipment_handlers "github.com/alissonmartineli/maintenance-tech/internal/handlers/equipment"
	workorder_handlers "github.com/alissonmartineli/maintenance-tech/internal/handlers/workorder"
	"github.com/alissonmartineli/maintenance-tech/internal/i18n"
	"github.com/alissonmartineli/maintenance-tech/internal/middleware"
	"github.com/alissonmartineli/maintenance-tech/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func EquipmentRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker) {
	r := api.Group("/equipments", middleware.AuthMiddleware(paseto, redis))
	equipmentHandler := equipment_handlers.NewEquipmentHandler(db, redis, i18n)
	workOrderHandler := workorder_handlers.NewWorkOrderHandler(db, redis, i18n)

	r.Get("/", equipmentHandler.ListEquipments)
	r.Post("/", equipmentHandler.CreateEquipment)
	r.Get("/:id", equipmentHandler.GetEquipment)
	r.Put("/:id", equipmentHandler.ReplaceEquipment)
	r.Delete("/:id", equipmentHandler.DeleteEquipment)

	// The "Histórico" view: the equipment joined with its work orders.
	r.Get("/:id/workorders", workOrderHandler.EquipmentHistory)
}
