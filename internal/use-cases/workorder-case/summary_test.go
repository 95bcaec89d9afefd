package workorder_case

import (
	"context"
	"testing"
	"time"

	workorder_dto "github.com/alissonmartineli/maintenance-tech/internal/dtos/workorder-dto"
	"github.com/alissonmartineli/maintenance-tech/internal/entity"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
	use_cases "github.com/alissonmartineli/maintenance-tech/internal/use-cases"
	"github.com/stretchr/testify/assert"
)

// Test 1: Cache hit - the ledger is not touched
func TestSummary_CacheHit(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkOrderRepo)
	cache := &use_cases.MockCache{
		GetFn: func(ctx context.Context, key string, dest any) (bool, *app_errors.AppError) {
			*dest.(*workorder_dto.WorkOrderSummary) = workorder_dto.WorkOrderSummary{
				Total:      7,
				InProgress: 3,
				Completed:  4,
				Overdue:    1,
			}
			return true, nil
		},
	}
	service := &WorkOrderService{repo: repo, cache: cache}

	summary, err := service.Summary(ctx)

	assert.Nil(t, err)
	assert.Equal(t, 7, summary.Total)
	assert.Equal(t, 1, cache.GetCalled)
	assert.Equal(t, 0, cache.SetCalled)

	repo.AssertNotCalled(t, "ListAll", ctx)
}

// Test 2: Cache miss - counts computed from the ledger and cached
func TestSummary_CacheMiss(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkOrderRepo)
	cache := &use_cases.MockCache{}
	service := &WorkOrderService{repo: repo, cache: cache}

	overdueDate := time.Now().Add(-48 * time.Hour)
	futureDate := time.Now().Add(48 * time.Hour)

	workOrders := []entity.WorkOrderEntity{
		{ID: "wo-1", Date: futureDate, Done: false},
		{ID: "wo-2", Date: overdueDate, Done: false},
		{ID: "wo-3", Date: overdueDate, Done: true}, // done past date is not overdue
	}
	repo.On("ListAll", ctx).Return(workOrders, (*app_errors.AppError)(nil))

	summary, err := service.Summary(ctx)

	assert.Nil(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.InProgress)
	assert.Equal(t, 1, summary.Completed)
	assert.Equal(t, 1, summary.Overdue)
	assert.Equal(t, summary.Total, summary.InProgress+summary.Completed)
	assert.Equal(t, 1, cache.SetCalled)

	repo.AssertExpectations(t)
}

// Test 3: Cache write failure is logged, not surfaced
func TestSummary_CacheSetFails(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkOrderRepo)
	cache := &use_cases.MockCache{
		SetFn: func(ctx context.Context, key string, val any, ttl time.Duration) *app_errors.AppError {
			return app_errors.NewAppError(500, app_errors.ErrInternal, "internal_error", nil)
		},
	}
	service := &WorkOrderService{repo: repo, cache: cache}

	repo.On("ListAll", ctx).Return([]entity.WorkOrderEntity{}, (*app_errors.AppError)(nil))

	summary, err := service.Summary(ctx)

	assert.Nil(t, err)
	assert.Equal(t, 0, summary.Total)
}
