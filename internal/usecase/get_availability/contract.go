package get_availability

import (
	"context"

	"github.com/LoLe05/jarimae-sub001/internal/domain"
)

// StoreRepository интерфейс репозитория заведений
type StoreRepository interface {
	// GetByID получает заведение вместе с недельным расписанием
	GetByID(ctx context.Context, id int64) (*domain.Store, error)
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	// GetByStoreWithFilter получает брони заведения на конкретную дату
	GetByStoreWithFilter(ctx context.Context, filter domain.StoreReservationsFilter) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
