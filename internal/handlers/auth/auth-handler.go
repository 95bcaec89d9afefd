package auth_handlers

import (
	"time"

	auth_dto "github.com/alissonmartineli/maintenance-tech/internal/dtos/auth-dto"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
	"github.com/alissonmartineli/maintenance-tech/internal/handlers"
	internal_i18n "github.com/alissonmartineli/maintenance-tech/internal/i18n"
	auth_case "github.com/alissonmartineli/maintenance-tech/internal/use-cases/auth-case"
	"github.com/alissonmartineli/maintenance-tech/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// TokenCookie is the session cookie the dashboard client expects.
const TokenCookie = "maintenancetech.token"

type AuthHandler struct {
	validator *validator.Validate
	service   auth_case.AuthServiceContract
	i18n      *internal_i18n.I18nService
}

func NewAuthHandler(db *pgxpool.Pool, redis *redis.Client, i18n *internal_i18n.I18nService, paseto *utils.PasetoMaker) *AuthHandler {
	return &AuthHandler{
		validator: validator.New(),
		service:   auth_case.NewAuthService(db, redis, paseto),
		i18n:      i18n,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req *auth_dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.Register(c.Context(), req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "auth.success_register", nil), resp, reqID)
	if err := c.Status(fiber.StatusCreated).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req *auth_dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.Login(c.Context(), req)
	if err != nil {
		return err
	}

	// The browser client reads the cookie; API clients read the body.
	c.Cookie(&fiber.Cookie{
		Name:     TokenCookie,
		Value:    resp.Token,
		Expires:  resp.ExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "auth.success_login", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	jti, ok := c.Locals("jti").(string)
	if !ok || jti == "" {
		return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}

	if err := h.service.Logout(c.Context(), jti); err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     TokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "auth.success_logout", nil), "OK", reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}
