package workorder_case

import (
	"context"
	"testing"
	"time"

	"github.com/alissonmartineli/maintenance-tech/internal/entity"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestGetWorkOrder_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkOrderRepo)
	service := &WorkOrderService{repo: repo}

	workOrder := &entity.WorkOrderEntity{
		ID:          "wo-1",
		Date:        time.Now(),
		Type:        entity.TypePreventive,
		Description: "Inspeção mensal",
	}
	repo.On("FindByID", ctx, "wo-1").Return(workOrder, (*app_errors.AppError)(nil))

	resp, err := service.GetWorkOrder(ctx, "wo-1")

	assert.Nil(t, err)
	assert.Equal(t, "wo-1", resp.ID)
	assert.Equal(t, "preventive", resp.Type)

	repo.AssertExpectations(t)
}

func TestGetWorkOrder_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkOrderRepo)
	service := &WorkOrderService{repo: repo}

	notFound := app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "work_order_not_found", nil)
	repo.On("FindByID", ctx, "wo-999").Return((*entity.WorkOrderEntity)(nil), notFound)

	resp, err := service.GetWorkOrder(ctx, "wo-999")

	assert.Nil(t, resp)
	assert.Equal(t, notFound, err)
}
