package cancel_reservation

import (
	"github.com/LoLe05/jarimae-sub001/internal/service/reservations/models"
)

// CancelReservationRequest HTTP request model
type CancelReservationRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelReservationRequest) ToServiceRequest(userID int64) *models.CancelReservationRequest {
	return &models.CancelReservationRequest{
		UserID:             userID,
		CancellationReason: r.CancellationReason,
	}
}
