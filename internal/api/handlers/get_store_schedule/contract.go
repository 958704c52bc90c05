package get_store_schedule

import (
	"context"

	"github.com/LoLe05/jarimae-sub001/internal/service/stores/models"
)

type StoreService interface {
	GetSchedule(ctx context.Context, storeID int64) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
