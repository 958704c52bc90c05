package create_reservation

import (
	"context"

	"github.com/LoLe05/jarimae-sub001/internal/domain"
	"github.com/LoLe05/jarimae-sub001/internal/integrations/notification"
)

// StoreRepository интерфейс репозитория заведений
type StoreRepository interface {
	// GetByID получает заведение вместе с недельным расписанием
	GetByID(ctx context.Context, id int64) (*domain.Store, error)
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByStoreWithFilter(ctx context.Context, filter domain.StoreReservationsFilter) ([]*domain.Reservation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// NotificationClient интерфейс клиента сервиса уведомлений
type NotificationClient interface {
	SendReservationCreated(ctx context.Context, event *notification.ReservationCreatedEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
