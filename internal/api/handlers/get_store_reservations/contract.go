package get_store_reservations

import (
	"context"

	"github.com/LoLe05/jarimae-sub001/internal/service/reservations/models"
)

type ReservationService interface {
	GetStoreReservations(ctx context.Context, req *models.GetStoreReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
