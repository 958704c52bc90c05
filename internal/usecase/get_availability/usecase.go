package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/LoLe05/jarimae-sub001/internal/domain"
	storeRepo "github.com/LoLe05/jarimae-sub001/internal/infra/storage/store"
)

// UseCase use case расчёта доступных слотов для брони.
// Только чтение, без побочных эффектов - выполняется вне транзакции,
// слегка устаревший снимок леджера влияет лишь на отображение.
type UseCase struct {
	storeRepo       StoreRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	storeRepo StoreRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		storeRepo:       storeRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute выполняет use case расчёта доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: store=%d, date=%s, partySize=%d",
		req.StoreID, req.Date.Format(domain.DateFormat), req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем заведение с расписанием
	store, err := uc.storeRepo.GetByID(ctx, req.StoreID)
	if err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			uc.logger.Warn("GetAvailability: store id=%d not found", req.StoreID)
			return nil, ErrStoreNotFound
		}
		uc.logger.Error("GetAvailability: failed to get store id=%d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: failed to get store: %v", ErrInternal, err)
	}

	// 3. Заведение должно быть активно и принимать брони
	if !store.IsActive() {
		uc.logger.Warn("GetAvailability: store id=%d is not active (status=%s)", req.StoreID, store.Status)
		return nil, ErrStoreInactive
	}
	if !store.AcceptsReservations {
		uc.logger.Warn("GetAvailability: store id=%d does not accept reservations", req.StoreID)
		return nil, ErrReservationsNotAccepted
	}

	// 4. Размер компании не может превышать вместимость - отказ всему
	// запросу независимо от даты и времени
	if req.PartySize > store.Capacity {
		uc.logger.Warn("GetAvailability: party size %d exceeds capacity %d for store id=%d",
			req.PartySize, store.Capacity, req.StoreID)
		return nil, ErrPartySizeExceedsCapacity
	}

	// 5. Расписание на день недели. Закрытый день - корректный пустой
	// результат, а не ошибка.
	hours, _ := store.HoursFor(req.Date.Weekday())
	if hours.IsClosed {
		uc.logger.Info("GetAvailability: store id=%d is closed on %s",
			req.StoreID, req.Date.Format(domain.DateFormat))
		return &Response{
			StoreID:        req.StoreID,
			Date:           req.Date,
			PartySize:      req.PartySize,
			Available:      false,
			Slots:          []domain.TimeSlot{},
			AvailableSlots: []domain.TimeSlot{},
			BusinessHour:   hours,
		}, nil
	}

	// 6. Желаемое время должно попадать в окно начала посадки
	// [open, close - длительность]
	if req.PreferredTime != nil &&
		!domain.WithinSeatingWindow(*req.PreferredTime, hours.OpenTime, hours.CloseTime, store.AverageMealDurationMinutes) {
		uc.logger.Warn("GetAvailability: preferred time %s outside business hours for store id=%d",
			*req.PreferredTime, req.StoreID)
		return nil, ErrPreferredTimeOutsideHours
	}

	// 7. Генерируем сетку слотов с фиксированным шагом.
	// Окно занятости слота - средняя длительность посадки заведения.
	grid, err := domain.BuildSlotGrid(hours.OpenTime, hours.CloseTime, store.AverageMealDurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to build slot grid for store id=%d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: failed to build slot grid: %v", ErrInternal, err)
	}

	// 8. Читаем активные брони на эту дату
	filter := domain.StoreReservationsFilter{
		StoreID:         req.StoreID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false, // Только PENDING и CONFIRMED занимают вместимость
	}

	reservations, err := uc.reservationRepo.GetByStoreWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 9. Вычисляем занятость каждого слота суммой гостей пересекающихся
	// активных броней
	slots := domain.CalculateSlotOccupancy(
		grid,
		store.AverageMealDurationMinutes,
		reservations,
		store.Capacity,
		req.PartySize,
	)

	availableSlots := filterAvailable(slots)

	response := &Response{
		StoreID:        req.StoreID,
		Date:           req.Date,
		PartySize:      req.PartySize,
		Available:      len(availableSlots) > 0,
		Slots:          slots,
		AvailableSlots: availableSlots,
		BusinessHour:   hours,
	}

	// 10. Классифицируем желаемое время по сетке
	if req.PreferredTime != nil {
		response.PreferredTime = classifyPreferredTime(*req.PreferredTime, slots)
	}

	uc.logger.Info("GetAvailability: store=%d, date=%s - %d slots, %d available",
		req.StoreID, req.Date.Format(domain.DateFormat), len(slots), len(availableSlots))

	return response, nil
}
