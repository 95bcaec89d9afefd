package cache

import (
	"context"
	"time"

	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
)

// Cache is the read-through cache the services depend on, so tests can swap
// Redis out. Get unmarshals into dest and reports whether the key was present.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, *app_errors.AppError)
	Set(ctx context.Context, key string, value any, ttl time.Duration) *app_errors.AppError
	Del(ctx context.Context, key string) error
}
