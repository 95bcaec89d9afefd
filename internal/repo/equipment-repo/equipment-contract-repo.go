package equipment_repo

import (
	"context"

	"github.com/alissonmartineli/maintenance-tech/internal/entity"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
)

type EquipmentRepoContract interface {
	Insert(ctx context.Context, equipment *entity.EquipmentEntity) *app_errors.AppError
	FindByID(ctx context.Context, equipmentID string) (*entity.EquipmentEntity, *app_errors.AppError)
	List(ctx context.Context) ([]entity.EquipmentEntity, *app_errors.AppError)
	Replace(ctx context.Context, equipment *entity.EquipmentEntity) *app_errors.AppError
	Delete(ctx context.Context, equipmentID string) *app_errors.AppError
}
