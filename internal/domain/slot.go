package domain

import (
	"github.com/LoLe05/jarimae-sub001/pkg/types"
)

// TimeSlot кандидат на начало брони на фиксированной 30-минутной сетке
// в пределах рабочих часов. Вычисляется заново на каждый запрос
// доступности и нигде не хранится.
type TimeSlot struct {
	StartTime         types.TimeString
	DurationMinutes   int
	RemainingCapacity int // остаток вместимости, не меньше 0
	Available         bool
}

// IsFull returns true if the slot has no remaining capacity
func (s *TimeSlot) IsFull() bool {
	return s.RemainingCapacity <= 0
}

// BuildSlotGrid генерирует сетку кандидатов от открытия до закрытия.
// Слот t попадает в сетку, пока t + seatingMinutes <= close (включительно:
// посадка, начинающаяся в последний допустимый момент, входит в сетку).
// Шаг сетки фиксированный - SlotIntervalMinutes. Если день короче одной
// посадки, сетка пустая - это не ошибка.
func BuildSlotGrid(open, close types.TimeString, seatingMinutes int) ([]types.TimeString, error) {
	openMinutes, err := open.Minutes()
	if err != nil {
		return nil, err
	}
	closeMinutes, err := close.Minutes()
	if err != nil {
		return nil, err
	}

	grid := make([]types.TimeString, 0)
	for m := openMinutes; m <= closeMinutes-seatingMinutes; m += SlotIntervalMinutes {
		slot, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			return nil, err
		}
		grid = append(grid, slot)
	}

	return grid, nil
}

// SumOverlappingGuests суммирует party_size всех активных броней,
// интервалы которых пересекают окно [slotStart, slotStart+windowMinutes).
// Пересечение полуинтервалов строгое: брони, граничащие с окном
// (конец одной ровно в начале другого), не пересекаются.
func SumOverlappingGuests(slotStart types.TimeString, windowMinutes int, reservations []*Reservation) int {
	startMinutes, err := slotStart.Minutes()
	if err != nil {
		return 0
	}
	endMinutes := startMinutes + windowMinutes

	total := 0
	for _, res := range reservations {
		// Терминальные брони не занимают вместимость
		if !res.IsActive() {
			continue
		}

		resStart, resEnd, ok := res.Interval()
		if !ok {
			continue
		}

		// [a,b) и [c,d) пересекаются тогда и только тогда, когда a < d и b > c
		if startMinutes < resEnd && endMinutes > resStart {
			total += res.PartySize
		}
	}

	return total
}

// CalculateSlotOccupancy вычисляет занятость каждого слота сетки.
// Окно занятости слота всегда равно средней длительности посадки заведения,
// независимо от индивидуальных длительностей существующих броней.
// RemainingCapacity ограничен нулем снизу для отображения, но признак
// Available вычисляется до ограничения.
func CalculateSlotOccupancy(
	grid []types.TimeString,
	seatingMinutes int,
	reservations []*Reservation,
	capacity int,
	partySize int,
) []TimeSlot {
	slots := make([]TimeSlot, len(grid))

	for i, start := range grid {
		occupied := SumOverlappingGuests(start, seatingMinutes, reservations)

		remaining := capacity - occupied
		available := remaining >= partySize
		if remaining < 0 {
			remaining = 0
		}

		slots[i] = TimeSlot{
			StartTime:         start,
			DurationMinutes:   seatingMinutes,
			RemainingCapacity: remaining,
			Available:         available,
		}
	}

	return slots
}

// WithinSeatingWindow проверяет, что время попадает в допустимое окно
// начала посадки [open, close - seatingMinutes]
func WithinSeatingWindow(t, open, close types.TimeString, seatingMinutes int) bool {
	tMinutes, err := t.Minutes()
	if err != nil {
		return false
	}
	openMinutes, err := open.Minutes()
	if err != nil {
		return false
	}
	closeMinutes, err := close.Minutes()
	if err != nil {
		return false
	}
	return tMinutes >= openMinutes && tMinutes <= closeMinutes-seatingMinutes
}
