package create_reservation

import (
	"time"

	"github.com/LoLe05/jarimae-sub001/pkg/types"
)

// Request модель запроса на создание брони
type Request struct {
	StoreID    int64            // ID заведения
	CustomerID int64            // ID клиента
	Date       time.Time        // Дата брони (без времени)
	Time       types.TimeString // Время начала (например, "18:30")
	PartySize  int              // Количество гостей

	// EstimatedDurationMinutes длительность посадки; если не указана,
	// берётся средняя длительность посадки заведения
	EstimatedDurationMinutes *int

	ContactName     string  // Контактное имя
	ContactPhone    string  // Контактный телефон
	SpecialRequests *string // Пожелания (опционально)
}

// Response модель ответа с созданной бронью
type Response struct {
	ID         int64
	StoreID    int64
	CustomerID int64

	ReservationDate          time.Time
	ReservationTime          types.TimeString
	PartySize                int
	EstimatedDurationMinutes int
	Status                   string // Всегда PENDING при создании

	ContactName     string
	ContactPhone    string
	SpecialRequests *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
