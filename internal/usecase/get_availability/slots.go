package get_availability

import (
	"github.com/LoLe05/jarimae-sub001/internal/domain"
	"github.com/LoLe05/jarimae-sub001/pkg/types"
)

// Человекочитаемые причины недоступности желаемого времени
const (
	reasonSlotFull      = "недостаточно свободных мест на выбранное время"
	reasonNotOnSlotGrid = "время не совпадает с сеткой слотов"
)

// classifyPreferredTime ищет желаемое время в сетке слотов точным
// совпадением строк и возвращает его доступность.
// Время, не попадающее на сетку, считается недоступным.
func classifyPreferredTime(preferred types.TimeString, slots []domain.TimeSlot) *PreferredTimeResult {
	for _, slot := range slots {
		if slot.StartTime != preferred {
			continue
		}

		result := &PreferredTimeResult{
			StartTime:         slot.StartTime,
			Available:         slot.Available,
			RemainingCapacity: slot.RemainingCapacity,
		}
		if !slot.Available {
			result.Reason = reasonSlotFull
		}
		return result
	}

	return &PreferredTimeResult{
		StartTime: preferred,
		Available: false,
		Reason:    reasonNotOnSlotGrid,
	}
}

// filterAvailable возвращает только доступные слоты
func filterAvailable(slots []domain.TimeSlot) []domain.TimeSlot {
	available := make([]domain.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.Available {
			available = append(available, slot)
		}
	}
	return available
}
