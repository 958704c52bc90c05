package get_availability

import (
	"time"

	"github.com/LoLe05/jarimae-sub001/internal/domain"
	"github.com/LoLe05/jarimae-sub001/pkg/types"
)

// Request модель запроса на расчёт доступности
type Request struct {
	StoreID       int64             // ID заведения
	Date          time.Time         // Дата брони (без времени)
	PartySize     int               // Количество гостей
	PreferredTime *types.TimeString // Желаемое время начала (опционально)
}

// Response модель ответа с рассчитанной доступностью.
// Слоты вычисляются заново на каждый запрос и нигде не кэшируются:
// устаревший результат привел бы к овербукингу или ложным отказам.
type Response struct {
	StoreID   int64
	Date      time.Time
	PartySize int

	// Available true, если хотя бы один слот доступен для запрошенной компании
	Available bool
	// Slots полная сетка слотов дня (для отображения)
	Slots []domain.TimeSlot
	// AvailableSlots только доступные слоты
	AvailableSlots []domain.TimeSlot

	// BusinessHour расписание заведения на запрошенный день
	BusinessHour domain.BusinessHour

	// PreferredTime результат проверки желаемого времени (если оно было указано)
	PreferredTime *PreferredTimeResult
}

// PreferredTimeResult результат проверки желаемого времени по сетке слотов
type PreferredTimeResult struct {
	StartTime         types.TimeString
	Available         bool
	RemainingCapacity int
	// Reason человекочитаемая причина недоступности (пустая строка, если слот доступен)
	Reason string
}
