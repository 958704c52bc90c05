package stores

import (
	"context"

	"github.com/LoLe05/jarimae-sub001/internal/domain"
)

// StoreRepository интерфейс репозитория заведений
type StoreRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Store, error)
	ReplaceSchedule(
		ctx context.Context,
		storeID int64,
		capacity int,
		averageMealDurationMinutes int,
		acceptsReservations bool,
		hours []domain.BusinessHour,
	) error
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
