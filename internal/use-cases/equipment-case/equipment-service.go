package equipment_case

import (
	"context"
	"time"

	"github.com/alissonmartineli/maintenance-tech/internal/abstraction/cache"
	equipment_dto "github.com/alissonmartineli/maintenance-tech/internal/dtos/equipment-dto"
	"github.com/alissonmartineli/maintenance-tech/internal/entity"
	app_errors "github.com/alissonmartineli/maintenance-tech/internal/errors"
	equipment_repo "github.com/alissonmartineli/maintenance-tech/internal/repo/equipment-repo"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const equipmentListCacheKey = "equipments:list"

type EquipmentService struct {
	db    *pgxpool.Pool
	repo  equipment_repo.EquipmentRepoContract
	cache cache.Cache
}

func NewEquipmentService(db *pgxpool.Pool, redis *redis.Client) EquipmentServiceContract {
	return &EquipmentService{
		db:    db,
		repo:  equipment_repo.NewEquipmentRepo(db),
		cache: cache.NewRedisCache(redis),
	}
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, req *equipment_dto.CreateEquipmentRequest) (*equipment_dto.EquipmentResponse, *app_errors.AppError) {
	equipmentID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	equipment := &entity.EquipmentEntity{
		ID:           equipmentID.String(),
		Code:         req.Code,
		Description:  req.Description,
		Manufacturer: req.Manufacturer,
		Brand:        req.Brand,
		Model:        req.Model,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Insert(ctx, equipment); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)

	return toEquipmentResponse(equipment), nil
}

func (s *EquipmentService) GetEquipment(ctx context.Context, equipmentID string) (*equipment_dto.EquipmentResponse, *app_errors.AppError) {
	equipment, err := s.repo.FindByID(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	return toEquipmentResponse(equipment), nil
}

func (s *EquipmentService) ListEquipments(ctx context.Context) ([]equipment_dto.EquipmentResponse, *app_errors.AppError) {
	// Redis is only a cache here, never the source of truth.
	var cached []equipment_dto.EquipmentResponse
	if hit, cacheErr := s.cache.Get(ctx, equipmentListCacheKey, &cached); hit && cacheErr == nil {
		return cached, nil
	}

	equipments, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]equipment_dto.EquipmentResponse, 0, len(equipments))
	for i := range equipments {
		resp = append(resp, *toEquipmentResponse(&equipments[i]))
	}

	if err := s.cache.Set(ctx, equipmentListCacheKey, resp, time.Minute); err != nil {
		log.Error().Err(err.Err).Msg("failed to set equipment list cache")
	}

	return resp, nil
}

func (s *EquipmentService) ReplaceEquipment(ctx context.Context, equipmentID string, req *equipment_dto.ReplaceEquipmentRequest) (*equipment_dto.EquipmentResponse, *app_errors.AppError) {
	equipment := &entity.EquipmentEntity{
		ID:           equipmentID,
		Code:         req.Code,
		Description:  req.Description,
		Manufacturer: req.Manufacturer,
		Brand:        req.Brand,
		Model:        req.Model,
	}

	if err := s.repo.Replace(ctx, equipment); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)

	updated, err := s.repo.FindByID(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	return toEquipmentResponse(updated), nil
}

// DeleteEquipment orphans any work orders still referencing the equipment;
// the read side resolves those references as missing.
func (s *EquipmentService) DeleteEquipment(ctx context.Context, equipmentID string) *app_errors.AppError {
	if err := s.repo.Delete(ctx, equipmentID); err != nil {
		return err
	}

	s.invalidateListCache(ctx)

	return nil
}

func (s *EquipmentService) invalidateListCache(ctx context.Context) {
	if err := s.cache.Del(ctx, equipmentListCacheKey); err != nil {
		log.Error().Err(err).Msg("failed to invalidate equipment list cache")
	}
}

func toEquipmentResponse(e *entity.EquipmentEntity) *equipment_dto.EquipmentResponse {
	return &equipment_dto.EquipmentResponse{
		ID:           e.ID,
		Code:         e.Code,
		Description:  e.Description,
		Manufacturer: e.Manufacturer,
		Brand:        e.Brand,
		Model:        e.Model,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
