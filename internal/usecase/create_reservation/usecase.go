package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/LoLe05/jarimae-sub001/internal/domain"
	storeRepo "github.com/LoLe05/jarimae-sub001/internal/infra/storage/store"
	"github.com/LoLe05/jarimae-sub001/internal/integrations/notification"
)

// UseCase use case создания брони.
// Проверка доступности и вставка выполняются в одной сериализуемой
// транзакции с блокировкой броней дня (FOR UPDATE) - два конкурентных
// запроса на один слот не могут оба пройти проверку до записи.
type UseCase struct {
	storeRepo       StoreRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	notifier        NotificationClient
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	storeRepo StoreRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	notifier NotificationClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		storeRepo:       storeRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		notifier:        notifier,
		logger:          logger,
	}
}

// Execute выполняет use case создания брони.
// Проверки упорядочены, первая провалившаяся завершает запрос;
// единственная запись происходит после прохождения всех проверок.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: customer=%d, store=%d, date=%s, time=%s, partySize=%d",
		req.CustomerID, req.StoreID, req.Date.Format(domain.DateFormat), req.Time, req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем заведение с расписанием
	store, err := uc.storeRepo.GetByID(ctx, req.StoreID)
	if err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			uc.logger.Warn("CreateReservation: store id=%d not found", req.StoreID)
			return nil, ErrStoreNotFound
		}
		uc.logger.Error("CreateReservation: failed to get store id=%d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: failed to get store: %v", ErrInternal, err)
	}

	// 3. Заведение должно быть активно и принимать брони
	if !store.IsActive() {
		uc.logger.Warn("CreateReservation: store id=%d is not active (status=%s)", req.StoreID, store.Status)
		return nil, ErrStoreInactive
	}
	if !store.AcceptsReservations {
		uc.logger.Warn("CreateReservation: store id=%d does not accept reservations", req.StoreID)
		return nil, ErrReservationsNotAccepted
	}

	// 4. Размер компании не может превышать вместимость
	if req.PartySize > store.Capacity {
		uc.logger.Warn("CreateReservation: party size %d exceeds capacity %d for store id=%d",
			req.PartySize, store.Capacity, req.StoreID)
		return nil, ErrPartySizeExceedsCapacity
	}

	// 5. День должен быть рабочим
	hours, _ := store.HoursFor(req.Date.Weekday())
	if hours.IsClosed {
		uc.logger.Warn("CreateReservation: store id=%d is closed on %s",
			req.StoreID, req.Date.Format(domain.DateFormat))
		return nil, ErrStoreClosed
	}

	// 6. Время начала должно попадать в рабочие часы [open, close]
	if !withinOperatingHours(req.Time, hours) {
		uc.logger.Warn("CreateReservation: time %s outside business hours [%s, %s] for store id=%d",
			req.Time, hours.OpenTime, hours.CloseTime, req.StoreID)
		return nil, ErrOutsideBusinessHours
	}

	// Длительность посадки по умолчанию - средняя по заведению
	duration := store.AverageMealDurationMinutes
	if req.EstimatedDurationMinutes != nil {
		duration = *req.EstimatedDurationMinutes
	}

	var result *domain.Reservation

	// 7. Проверка доступности и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Читаем активные брони дня с блокировкой строк (FOR UPDATE)
		filter := domain.StoreReservationsFilter{
			StoreID:         req.StoreID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false, // Только активные брони занимают вместимость
		}

		reservations, err := uc.reservationRepo.GetByStoreWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 7.2. Точное совпадение времени с активной бронью - отказ
		if hasExactTimeCollision(req.Time, reservations) {
			uc.logger.Warn("CreateReservation: exact time collision at %s for store id=%d", req.Time, req.StoreID)
			return ErrTimeSlotUnavailable
		}

		// 7.3. Проверка вместимости: сумма гостей пересекающихся активных
		// броней плюс новая компания не должна превышать вместимость
		occupied := domain.SumOverlappingGuests(req.Time, duration, reservations)
		if occupied+req.PartySize > store.Capacity {
			uc.logger.Warn("CreateReservation: capacity exceeded at %s for store id=%d: %d occupied + %d requested > %d",
				req.Time, req.StoreID, occupied, req.PartySize, store.Capacity)
			return ErrTimeSlotUnavailable
		}

		uc.logger.Info("CreateReservation: slot %s available for store id=%d, %d/%d guests occupied",
			req.Time, req.StoreID, occupied, store.Capacity)

		// 7.4. Создаем бронь. Новая бронь всегда PENDING.
		reservation := &domain.Reservation{
			StoreID:                  req.StoreID,
			CustomerID:               req.CustomerID,
			ReservationDate:          req.Date,
			ReservationTime:          req.Time,
			PartySize:                req.PartySize,
			EstimatedDurationMinutes: duration,
			Status:                   domain.StatusPending,
			ContactName:              req.ContactName,
			ContactPhone:             req.ContactPhone,
			SpecialRequests:          req.SpecialRequests,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	// 8. Уведомляем владельца заведения. Fire-and-forget: доставка
	// уведомления не влияет на результат создания брони.
	go uc.notifyOwner(store, result)

	return &Response{
		ID:                       result.ID,
		StoreID:                  result.StoreID,
		CustomerID:               result.CustomerID,
		ReservationDate:          result.ReservationDate,
		ReservationTime:          result.ReservationTime,
		PartySize:                result.PartySize,
		EstimatedDurationMinutes: result.EstimatedDurationMinutes,
		Status:                   string(result.Status),
		ContactName:              result.ContactName,
		ContactPhone:             result.ContactPhone,
		SpecialRequests:          result.SpecialRequests,
		CreatedAt:                result.CreatedAt,
		UpdatedAt:                result.UpdatedAt,
	}, nil
}

// notifyOwner отправляет уведомление владельцу заведения о новой брони.
// Выполняется в отдельной горутине с собственным контекстом - таймаут
// исходного запроса не должен обрывать отправку.
func (uc *UseCase) notifyOwner(store *domain.Store, res *domain.Reservation) {
	event := notification.NewReservationCreatedEvent(store, res)

	if err := uc.notifier.SendReservationCreated(context.Background(), event); err != nil {
		uc.logger.Error("CreateReservation: failed to notify owner of store id=%d about reservation id=%d: %v",
			store.ID, res.ID, err)
		return
	}

	uc.logger.Info("CreateReservation: owner of store id=%d notified about reservation id=%d", store.ID, res.ID)
}
