package create_reservation

import (
	"fmt"

	"github.com/LoLe05/jarimae-sub001/internal/domain"
	"github.com/LoLe05/jarimae-sub001/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StoreID <= 0 {
		return fmt.Errorf("%w: storeID must be positive", ErrInvalidInput)
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if req.PartySize < domain.MinPartySize {
		return fmt.Errorf("%w: partySize must be positive", ErrInvalidInput)
	}

	if req.EstimatedDurationMinutes != nil && *req.EstimatedDurationMinutes <= 0 {
		return fmt.Errorf("%w: estimatedDurationMinutes must be positive", ErrInvalidInput)
	}

	if req.ContactName == "" {
		return fmt.Errorf("%w: contactName is required", ErrInvalidInput)
	}

	if req.ContactPhone == "" {
		return fmt.Errorf("%w: contactPhone is required", ErrInvalidInput)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: specialRequests is too long", ErrInvalidInput)
	}

	return nil
}

// withinOperatingHours проверяет, что время начала брони попадает
// в рабочие часы [open, close]. Верхняя граница включительная -
// проверка приёма брони мягче границы сетки слотов (close минус
// длительность посадки), это поведение зафиксировано контрактом.
func withinOperatingHours(t types.TimeString, hours domain.BusinessHour) bool {
	return !t.IsBefore(hours.OpenTime) && !t.IsAfter(hours.CloseTime)
}

// hasExactTimeCollision проверяет точное совпадение времени начала
// с существующей активной бронью
func hasExactTimeCollision(t types.TimeString, reservations []*domain.Reservation) bool {
	for _, res := range reservations {
		if res.IsActive() && res.ReservationTime == t {
			return true
		}
	}
	return false
}
