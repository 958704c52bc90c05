package domain

// Default configuration values
const (
	// SlotIntervalMinutes фиксированный шаг сетки слотов
	SlotIntervalMinutes = 30

	// DefaultAverageMealDurationMinutes длительность посадки по умолчанию
	DefaultAverageMealDurationMinutes = 60
)

// Business validation constants
const (
	MinPartySize = 1

	MinCapacity = 1
	MaxCapacity = 1000

	MinMealDurationMinutes = 15
	MaxMealDurationMinutes = 480 // 8 часов

	MaxSpecialRequestsLength    = 500
	MaxCancellationReasonLength = 500

	// DaysPerWeek расписание заведения всегда содержит ровно 7 дней
	DaysPerWeek = 7
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы броней, занимающих вместимость заведения.
// Только PENDING и CONFIRMED участвуют в расчёте доступности.
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses терминальные статусы, исключаемые из расчёта доступности
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
	StatusCompleted,
	StatusNoShow,
}
