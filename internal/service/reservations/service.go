package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/LoLe05/jarimae-sub001/internal/domain"
	reservationRepo "github.com/LoLe05/jarimae-sub001/internal/infra/storage/reservation"
	storeRepo "github.com/LoLe05/jarimae-sub001/internal/infra/storage/store"
	"github.com/LoLe05/jarimae-sub001/internal/service/reservations/models"
)

// Service сервис для работы с бронями
type Service struct {
	reservationRepo ReservationRepository
	storeRepo       StoreRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(
	reservationRepo ReservationRepository,
	storeRepo StoreRepository,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		storeRepo:       storeRepo,
		logger:          logger,
	}
}

// GetByID получает бронь по ID
// Проверяет права доступа - пользователь может видеть только свою бронь
// или если он является владельцем заведения
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, reservation, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(reservation), nil
}

// GetUserReservations получает историю броней пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%d, status=%v", req.UserID, req.Status)

	// Конвертируем статус из строки в domain.ReservationStatus
	var domainStatus *domain.ReservationStatus
	if req.Status != nil {
		status, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserReservations: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	reservations, err := s.reservationRepo.GetByCustomerID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: successfully fetched %d reservations for user=%d", len(reservations), req.UserID)
	return models.FromDomainReservationList(reservations), nil
}

// GetStoreReservations получает брони заведения с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению неактивных броней
// Доступно только владельцу заведения
//
// Примеры использования:
// - Все активные брони: GetStoreReservations(ctx, &GetStoreReservationsRequest{StoreID: 123, UserID: 456})
// - Брони на дату: StartDate и EndDate указывают на одну дату
// - Брони за период: StartDate и EndDate указывают на разные даты
// - Только подтверждённые: указать Status = "CONFIRMED"
// - Включая отменённые: IncludeInactive = true
func (s *Service) GetStoreReservations(ctx context.Context, req *models.GetStoreReservationsRequest) (*models.ReservationListResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := fmt.Sprintf("GetStoreReservations: fetching reservations for store=%d, user=%d", req.StoreID, req.UserID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	// Проверяем права доступа владельца
	if err := s.checkOwnerAccess(ctx, req.StoreID, req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetStoreReservations: invalid filter for store=%d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	// Получаем брони с фильтрацией
	reservations, err := s.reservationRepo.GetByStoreWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetStoreReservations: repository error for store=%d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: GetStoreReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetStoreReservations: successfully fetched %d reservations for store=%d", len(reservations), req.StoreID)
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронь
// Гость может отменить только свою бронь, владелец заведения - любую бронь заведения
// Отмена возможна только из статусов PENDING и CONFIRMED
func (s *Service) Cancel(ctx context.Context, reservationID int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", reservationID, req.UserID)

	// Получаем бронь
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа - гость или владелец заведения
	if reservation.CustomerID != req.UserID {
		if err := s.checkOwnerAccess(ctx, reservation.StoreID, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel reservation id=%d", req.UserID, reservationID)
			return ErrAccessDenied
		}
	}

	// Проверяем, можно ли отменить бронь
	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", reservationID, reservation.Status)
		return ErrCannotCancel
	}

	// Отменяем бронь
	if err := s.reservationRepo.Cancel(ctx, reservationID, req.CancellationReason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found during cancellation", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", reservationID)
	return nil
}

// UpdateStatus обновляет статус брони
// Доступно только владельцу заведения
// Допустимые переходы: PENDING -> CONFIRMED/CANCELLED, CONFIRMED -> CANCELLED/COMPLETED/NO_SHOW
func (s *Service) UpdateStatus(ctx context.Context, reservationID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating reservation id=%d to status=%s by user=%d",
		reservationID, req.Status, req.UserID)

	// Получаем бронь
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа (только владелец заведения)
	if err := s.checkOwnerAccess(ctx, reservation.StoreID, req.UserID); err != nil {
		return err
	}

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainReservationStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", req.Status, reservationID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	// Проверяем допустимость перехода статуса
	if !reservation.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for reservation id=%d",
			reservation.Status, newStatus, reservationID)
		return ErrInvalidStatusTransition
	}

	// Обновляем статус
	if err := s.reservationRepo.UpdateStatus(ctx, reservationID, newStatus); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found during update", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated reservation id=%d to status=%s", reservationID, newStatus)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к брони
// Пользователь может видеть свою бронь или если он владелец заведения
func (s *Service) checkUserAccess(ctx context.Context, reservation *domain.Reservation, userID int64) error {
	// Если пользователь гость брони - доступ разрешён
	if reservation.CustomerID == userID {
		return nil
	}

	// Проверяем, является ли пользователь владельцем заведения
	if err := s.checkOwnerAccess(ctx, reservation.StoreID, userID); err != nil {
		// Ошибка уже залогирована в checkOwnerAccess
		return ErrAccessDenied
	}

	return nil
}

// checkOwnerAccess проверяет, что пользователь является владельцем заведения
func (s *Service) checkOwnerAccess(ctx context.Context, storeID int64, userID int64) error {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			s.logger.Warn("checkOwnerAccess: store id=%d not found", storeID)
			return ErrStoreNotFound
		}
		s.logger.Error("checkOwnerAccess: failed to get store id=%d: %v", storeID, err)
		return fmt.Errorf("%w: checkOwnerAccess - failed to get store: %v", ErrInternal, err)
	}

	if store.OwnerID != userID {
		s.logger.Warn("checkOwnerAccess: user=%d is not the owner of store=%d", userID, storeID)
		return ErrAccessDenied
	}

	return nil
}
