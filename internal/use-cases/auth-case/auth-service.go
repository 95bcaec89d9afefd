package auth_case

import (
	"context"
	"fmt"
	"time"

	auth_dto "github.com/alissonmartineli/maintenance-tech/internal/dtos/auth-dto"
	"github.com/alissonmartineli/maintenance-tech/internal/entity"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
	auth_repo "github.com/alissonmartineli/maintenance-tech/internal/repo/auth-repo"
	"github.com/alissonmartineli/maintenance-tech/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Dashboard sessions are long-lived; the token and the Redis session expire
// together.
const sessionTTL = 24 * time.Hour

type AuthService struct {
	redis  *redis.Client
	paseto *utils.PasetoMaker
	repo   auth_repo.AuthRepoContract
}

func NewAuthService(db *pgxpool.Pool, redis *redis.Client, paseto *utils.PasetoMaker) AuthServiceContract {
	return &AuthService{
		redis:  redis,
		paseto: paseto,
		repo:   auth_repo.NewAuthRepo(db),
	}
}

func (s *AuthService) Register(ctx context.Context, req *auth_dto.RegisterRequest) (*auth_dto.RegisterResponse, *app_errors.AppError) {
	hashed, hashErr := utils.HashPassword(req.Password)
	if hashErr != nil {
		log.Error().Err(hashErr).Msg("failed to hash password")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", hashErr)
	}

	accountID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	account := &entity.AccountEntity{
		ID:           accountID.String(),
		Username:     req.Username,
		PasswordHash: hashed,
		CreatedAt:    time.Now(),
	}

	// A duplicate username surfaces as a unique violation, mapped to 409.
	if err := s.repo.InsertAccount(ctx, account); err != nil {
		return nil, err
	}

	return &auth_dto.RegisterResponse{
		ID:        account.ID,
		Username:  account.Username,
		CreatedAt: account.CreatedAt,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req *auth_dto.LoginRequest) (*auth_dto.LoginResponse, *app_errors.AppError) {
	account, err := s.repo.FindAccountByUsername(ctx, req.Username)
	if err != nil {
		// Unknown username and bad password are indistinguishable on purpose.
		return nil, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.invalid_credentials", err.Err)
	}

	if valid, verifyErr := utils.VerifyHash(account.PasswordHash, req.Password); !valid || verifyErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.invalid_credentials", verifyErr)
	}

	sessionID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	token, pasetoErr := s.paseto.CreateToken(account.ID, account.Username, sessionID.String(), sessionTTL)
	if pasetoErr != nil {
		log.Error().Err(pasetoErr).Msg("failed to create paseto token")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", pasetoErr)
	}

	session := &SessionTracker{
		JTI:       sessionID.String(),
		AccountID: account.ID,
		Username:  account.Username,
		LoginAt:   time.Now().Format(time.RFC3339),
	}
	if err := utils.SetCacheData(ctx, s.redis, sessionKey(session.JTI), session, sessionTTL); err != nil {
		log.Error().Err(err.Err).Msg("failed to store session")
		return nil, err
	}

	return &auth_dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(sessionTTL),
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) *app_errors.AppError {
	session, err := utils.GetCacheData[SessionTracker](ctx, s.redis, sessionKey(sessionID))
	if err != nil || session == nil {
		// Already logged out or never existed.
		return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}

	if err := utils.DeleteCacheData(ctx, s.redis, sessionKey(sessionID)); err != nil {
		log.Error().Err(err).Msg("failed to delete session")
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return nil
}

func sessionKey(jti string) string {
	return fmt.Sprintf("session:%s", jti)
}
