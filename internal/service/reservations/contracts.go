package reservations

import (
	"context"

	"github.com/LoLe05/jarimae-sub001/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByCustomerID(ctx context.Context, customerID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	GetByStoreWithFilter(ctx context.Context, filter domain.StoreReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// StoreRepository интерфейс репозитория заведений (проверка прав владельца)
type StoreRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Store, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
