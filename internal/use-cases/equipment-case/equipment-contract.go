package equipment_case

import (
	"context"

	equipment_dto "github.com/alissonmartineli/maintenance-tech/internal/dtos/equipment-dto"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
)

type EquipmentServiceContract interface {
	CreateEquipment(ctx context.Context, req *equipment_dto.CreateEquipmentRequest) (*equipment_dto.EquipmentResponse, *app_errors.AppError)
	GetEquipment(ctx context.Context, equipmentID string) (*equipment_dto.EquipmentResponse, *app_errors.AppError)
	ListEquipments(ctx context.Context) ([]equipment_dto.EquipmentResponse, *app_errors.AppError)
	ReplaceEquipment(ctx context.Context, equipmentID string, req *equipment_dto.ReplaceEquipmentRequest) (*equipment_dto.EquipmentResponse, *app_errors.AppError)
	DeleteEquipment(ctx context.Context, equipmentID string) *app_errors.AppError
}
