package routers

import (
	"github.com/alissonmartineli/maintenance-tech/internal/i18n"
	"github.com/alissonmartineli/maintenance-tech/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type CfgRedisStorage struct {
	Host     string
	Password string
}

// SetupRoutes mounts the API under /api/v1. Auth and health are public;
// the registries and the work-order ledger require a session.
func SetupRoutes(app *fiber.App, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker, cfgStorage CfgRedisStorage) {
	api := app.Group("/api/v1")

	AuthRouter(api, db, redis, i18n, paseto, cfgStorage)
	EquipmentRouter(api, db, redis, i18n, paseto)
	UserRouter(api, db, redis, i18n, paseto)
	WorkOrderRouter(api, db, redis, i18n, paseto)
	HealthRouter(api, db, redis)
}
