package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/LoLe05/jarimae-sub001/pkg/types"
)

// StoreStatus represents the lifecycle status of a store
type StoreStatus string

const (
	StoreStatusPending    StoreStatus = "PENDING"
	StoreStatusActive     StoreStatus = "ACTIVE"
	StoreStatusSuspended  StoreStatus = "SUSPENDED"
	StoreStatusClosedDown StoreStatus = "CLOSED_DOWN"
)

// Ошибки валидации недельного расписания
var (
	ErrScheduleDaysCount   = errors.New("domain: business hours must contain exactly 7 entries")
	ErrScheduleDayMissing  = errors.New("domain: business hours must cover every weekday exactly once")
	ErrScheduleInvalidTime = errors.New("domain: invalid business hours time")
	ErrScheduleOpenAfterClose = errors.New("domain: open time must be before close time")
)

// BusinessHour расписание работы заведения на один день недели
type BusinessHour struct {
	DayOfWeek int // 0=воскресенье .. 6=суббота
	OpenTime  types.TimeString
	CloseTime types.TimeString
	IsClosed  bool
}

// Store represents a restaurant in the system
type Store struct {
	ID      int64
	OwnerID int64
	Name    string
	Status  StoreStatus

	// Capacity максимальное число одновременно обслуживаемых гостей
	Capacity int
	// AverageMealDurationMinutes средняя длительность посадки
	AverageMealDurationMinutes int
	// AcceptsReservations флаг приёма броней; false полностью
	// отключает расчёт доступности
	AcceptsReservations bool

	// BusinessHours ровно 7 записей, по одной на каждый день недели.
	// Инвариант обеспечивается при записи (ValidateBusinessHours), не при чтении.
	BusinessHours []BusinessHour

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the store is active
func (s *Store) IsActive() bool {
	return s.Status == StoreStatusActive
}

// IsBookable returns true if the store currently accepts reservations
func (s *Store) IsBookable() bool {
	return s.IsActive() && s.AcceptsReservations
}

// HoursFor возвращает расписание на указанный день недели.
// Отсутствующая запись трактуется как закрытый день.
func (s *Store) HoursFor(weekday time.Weekday) (BusinessHour, bool) {
	for _, h := range s.BusinessHours {
		if h.DayOfWeek == int(weekday) {
			return h, true
		}
	}
	return BusinessHour{DayOfWeek: int(weekday), IsClosed: true}, false
}

// ValidateBusinessHours проверяет инвариант недельного расписания:
// ровно 7 записей, каждый день недели ровно один раз,
// open < close для открытых дней (работа в пределах одних суток).
func ValidateBusinessHours(hours []BusinessHour) error {
	if len(hours) != DaysPerWeek {
		return fmt.Errorf("%w: got %d", ErrScheduleDaysCount, len(hours))
	}

	var seen [DaysPerWeek]bool
	for _, h := range hours {
		if h.DayOfWeek < 0 || h.DayOfWeek >= DaysPerWeek || seen[h.DayOfWeek] {
			return fmt.Errorf("%w: day %d", ErrScheduleDayMissing, h.DayOfWeek)
		}
		seen[h.DayOfWeek] = true

		if h.IsClosed {
			continue
		}

		if err := h.OpenTime.Validate(); err != nil {
			return fmt.Errorf("%w: day %d open: %v", ErrScheduleInvalidTime, h.DayOfWeek, err)
		}
		if err := h.CloseTime.Validate(); err != nil {
			return fmt.Errorf("%w: day %d close: %v", ErrScheduleInvalidTime, h.DayOfWeek, err)
		}
		if !h.OpenTime.IsBefore(h.CloseTime) {
			return fmt.Errorf("%w: day %d", ErrScheduleOpenAfterClose, h.DayOfWeek)
		}
	}

	return nil
}
