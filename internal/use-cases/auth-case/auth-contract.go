package auth_case

import (
	"context"

	auth_dto "github.com/alissonmartineli/maintenance-tech/internal/dtos/auth-dto"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
)

type AuthServiceContract interface {
	Register(ctx context.Context, req *auth_dto.RegisterRequest) (*auth_dto.RegisterResponse, *app_errors.AppError)
	Login(ctx context.Context, req *auth_dto.LoginRequest) (*auth_dto.LoginResponse, *app_errors.AppError)
	Logout(ctx context.Context, sessionID string) *app_errors.AppError
}
