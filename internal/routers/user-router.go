package routers

import (
	collaborator_handlers "github.com/alissonmartineli/maintenance-tech/internal/handlers/collaborator"
	"github.com/alissonmartineli/maintenance-tech/internal/i18n"
	"github.com/alissonmartineli/maintenance-tech/internal/middleware"
	"github.com/alissonmartineli/maintenance-tech/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// UserRouter serves the collaborator registry. The path says /users because
// that is what the dashboard client calls the team.
func UserRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker) {
	r := api.Group("/users", middleware.AuthMiddleware(paseto, redis))
	collaboratorHandler := collaborator_handlers.NewCollaboratorHandler(db, redis, i18n)

	r.Get("/", collaboratorHandler.ListCollaborators)
	r.Post("/", collaboratorHandler.CreateCollaborator)
	r.Get("/:id", collaboratorHandler.GetCollaborator)
	r.Put("/:id", collaboratorHandler.ReplaceCollaborator)
	r.Delete("/:id", collaboratorHandler.DeleteCollaborator)
}
