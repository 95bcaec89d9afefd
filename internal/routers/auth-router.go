package routers

import (
	"fmt"
	"strings"
	"time"

	auth_handlers "github.com/alissonmartineli/maintenance-tech/internal/handlers/auth"
	"github.com/alissonmartineli/maintenance-tech/internal/i18n"
	"github.com/alissonmartineli/maintenance-tech/internal/middleware"
	"github.com/alissonmartineli/maintenance-tech/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redis_fiber "github.com/gofiber/storage/redis"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func AuthRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker, cfgStorage CfgRedisStorage) {
	r := api.Group("/auth")
	authHandler := auth_handlers.NewAuthHandler(db, redis, i18n, paseto)

	// redis-backed storage so the limiter survives restarts
	redisAddr := strings.Split(redis.Options().Addr, ":")
	redisStore := redis_fiber.New(redis_fiber.Config{
		Host:     redisAddr[0],
		Password: redis.Options().Password,
		Port:     6379,
		Database: 1,
	})

	r.Post("/register", authHandler.Register)
	r.Post("/login", limiter.New(limiter.Config{
		Max:        10,
		Expiration: 15 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return fmt.Sprintf("login:%s", c.IP())
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"status": "error",
				"error":  "too_many_request",
			})
		},
		Storage: redisStore,
	}), authHandler.Login)
	r.Delete("/logout", middleware.AuthMiddleware(paseto, redis), authHandler.Logout)
}
