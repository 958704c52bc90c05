package stores

import (
	"context"
	"errors"
	"fmt"

	"github.com/LoLe05/jarimae-sub001/internal/domain"
	storeRepo "github.com/LoLe05/jarimae-sub001/internal/infra/storage/store"
	"github.com/LoLe05/jarimae-sub001/internal/service/stores/models"
)

// Service сервис для работы с настройками броней заведений
type Service struct {
	storeRepo StoreRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса заведений
func NewService(
	storeRepo StoreRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		storeRepo: storeRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetSchedule получает недельное расписание и настройки броней заведения
// Публичный метод - доступен всем
func (s *Service) GetSchedule(ctx context.Context, storeID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for store=%d", storeID)

	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			s.logger.Warn("GetSchedule: store id=%d not found", storeID)
			return nil, ErrStoreNotFound
		}
		s.logger.Error("GetSchedule: repository error for store id=%d: %v", storeID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSchedule: successfully fetched schedule for store=%d", storeID)
	return models.FromDomainStore(store), nil
}

// UpdateSchedule обновляет настройки броней и недельное расписание заведения
// Доступно только владельцу заведения
// Расписание заменяется целиком - ровно 7 строк, по одной на каждый день недели
func (s *Service) UpdateSchedule(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateSchedule: updating schedule for store=%d by user=%d", req.StoreID, req.UserID)

	// 1. Валидируем настройки броней
	if err := s.validateSettings(req.Capacity, req.AverageMealDurationMinutes); err != nil {
		s.logger.Warn("UpdateSchedule: validation failed for store=%d: %v", req.StoreID, err)
		return nil, err
	}

	// 2. Валидируем недельное расписание
	hours := req.ToDomainBusinessHours()
	if err := domain.ValidateBusinessHours(hours); err != nil {
		s.logger.Warn("UpdateSchedule: invalid schedule for store=%d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	// 3. Получаем заведение для проверки прав доступа
	store, err := s.storeRepo.GetByID(ctx, req.StoreID)
	if err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			s.logger.Warn("UpdateSchedule: store id=%d not found", req.StoreID)
			return nil, ErrStoreNotFound
		}
		s.logger.Error("UpdateSchedule: failed to get store id=%d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: failed to get store: %v", ErrInternal, err)
	}

	// 4. Проверяем права доступа (только владелец заведения)
	if store.OwnerID != req.UserID {
		s.logger.Warn("UpdateSchedule: user=%d is not the owner of store=%d", req.UserID, req.StoreID)
		return nil, ErrAccessDenied
	}

	// 5. Заменяем настройки и расписание в одной транзакции
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.storeRepo.ReplaceSchedule(
			txCtx,
			req.StoreID,
			req.Capacity,
			req.AverageMealDurationMinutes,
			req.AcceptsReservations,
			hours,
		)
	})
	if err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			s.logger.Warn("UpdateSchedule: store id=%d not found during update", req.StoreID)
			return nil, ErrStoreNotFound
		}
		s.logger.Error("UpdateSchedule: repository error for store id=%d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	// 6. Перечитываем заведение с обновлённым расписанием
	updated, err := s.storeRepo.GetByID(ctx, req.StoreID)
	if err != nil {
		s.logger.Error("UpdateSchedule: failed to reload store id=%d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: failed to reload store: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSchedule: successfully updated schedule for store=%d", req.StoreID)
	return models.FromDomainStore(updated), nil
}

// validateSettings проверяет настройки броней заведения
func (s *Service) validateSettings(capacity int, averageMealDurationMinutes int) error {
	if capacity < domain.MinCapacity || capacity > domain.MaxCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d",
			ErrInvalidInput, domain.MinCapacity, domain.MaxCapacity)
	}

	if averageMealDurationMinutes < domain.MinMealDurationMinutes ||
		averageMealDurationMinutes > domain.MaxMealDurationMinutes {
		return fmt.Errorf("%w: average meal duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinMealDurationMinutes, domain.MaxMealDurationMinutes)
	}

	return nil
}
