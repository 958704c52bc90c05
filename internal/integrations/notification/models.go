package notification

import (
	"github.com/google/uuid"

	"github.com/LoLe05/jarimae-sub001/internal/domain"
)

// ReservationCreatedEvent событие о созданной брони для сервиса уведомлений
type ReservationCreatedEvent struct {
	// EventID уникальный идентификатор события, используется сервисом
	// уведомлений для дедупликации повторных доставок
	EventID string `json:"event_id"`

	StoreID       int64  `json:"store_id"`
	StoreName     string `json:"store_name"`
	OwnerID       int64  `json:"owner_id"`
	ReservationID int64  `json:"reservation_id"`
	CustomerID    int64  `json:"customer_id"`

	ReservationDate string `json:"reservation_date"` // YYYY-MM-DD
	ReservationTime string `json:"reservation_time"` // HH:MM
	PartySize       int    `json:"party_size"`
	ContactName     string `json:"contact_name"`
	ContactPhone    string `json:"contact_phone"`
}

// NewReservationCreatedEvent собирает событие из доменных сущностей
func NewReservationCreatedEvent(store *domain.Store, res *domain.Reservation) *ReservationCreatedEvent {
	return &ReservationCreatedEvent{
		EventID:         uuid.NewString(),
		StoreID:         store.ID,
		StoreName:       store.Name,
		OwnerID:         store.OwnerID,
		ReservationID:   res.ID,
		CustomerID:      res.CustomerID,
		ReservationDate: res.ReservationDate.Format(domain.DateFormat),
		ReservationTime: res.ReservationTime.String(),
		PartySize:       res.PartySize,
		ContactName:     res.ContactName,
		ContactPhone:    res.ContactPhone,
	}
}

// ErrorResponse модель ошибки от сервиса уведомлений
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
