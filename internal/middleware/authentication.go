package middleware

import (
	"fmt"
	"strings"

	"github.com/alissonmartineli/maintenance-tech/internal/dtos"
	auth_case "github.com/alissonmartineli/maintenance-tech/internal/use-cases/auth-case"
	"github.com/alissonmartineli/maintenance-tech/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// TokenCookie mirrors the cookie name set by the auth handler.
const TokenCookie = "maintenancetech.token"

// AuthMiddleware accepts the session token from the "maintenancetech.token"
// cookie (browser client) or an "Authorization: Bearer <token>" header (API
// clients). The PASETO claims must verify and the session must still exist in
// Redis; a logged-out token fails even before it expires.
// On success the handler context gets "account_id", "username" and "jti".
func AuthMiddleware(pasetoMaker *utils.PasetoMaker, redis *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(TokenCookie)

		if token == "" {
			authHeader := c.Get("Authorization")
			if authHeader == "" {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"status": "error",
					"error": dtos.ErrorResponse{
						Code:    fiber.StatusUnauthorized,
						Message: "Missing session cookie or Authorization header",
					},
				})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"status": "error",
					"error": dtos.ErrorResponse{
						Code:    fiber.StatusUnauthorized,
						Message: "Malformed Authorization header. Use Bearer <token>.",
					},
				})
			}

			token = parts[1]
		}

		payload, err := pasetoMaker.VerifyToken(token)
		if err != nil {
			log.Debug().Err(err).Msg("token verification failed")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": "error",
				"error": dtos.ErrorResponse{
					Code:    fiber.StatusUnauthorized,
					Message: "Token is invalid or expired",
				},
			})
		}

		// The session must still exist server-side.
		redisKey := fmt.Sprintf("session:%s", payload.JTI)
		session, _ := utils.GetCacheData[auth_case.SessionTracker](c.Context(), redis, redisKey)
		if session == nil || session.AccountID != payload.AccountID {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": "error",
				"error": dtos.ErrorResponse{
					Code:    fiber.StatusUnauthorized,
					Message: "Session is no longer active",
				},
			})
		}

		c.Locals("account_id", payload.AccountID)
		c.Locals("username", payload.Username)
		c.Locals("jti", payload.JTI)

		return c.Next()
	}
}
