package update_store_schedule

import (
	"github.com/LoLe05/jarimae-sub001/internal/service/stores/models"
)

// BusinessHourInput HTTP модель одной строки недельного расписания
type BusinessHourInput struct {
	DayOfWeek int    `json:"dayOfWeek"`
	OpenTime  string `json:"openTime,omitempty"`
	CloseTime string `json:"closeTime,omitempty"`
	IsClosed  bool   `json:"isClosed"`
}

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	Capacity                   int                 `json:"capacity"`
	AverageMealDurationMinutes int                 `json:"averageMealDurationMinutes"`
	AcceptsReservations        bool                `json:"acceptsReservations"`
	BusinessHours              []BusinessHourInput `json:"businessHours"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(storeID int64, userID int64) *models.UpdateScheduleRequest {
	hours := make([]models.BusinessHourInput, len(r.BusinessHours))
	for i, h := range r.BusinessHours {
		hours[i] = models.BusinessHourInput{
			DayOfWeek: h.DayOfWeek,
			OpenTime:  h.OpenTime,
			CloseTime: h.CloseTime,
			IsClosed:  h.IsClosed,
		}
	}

	return &models.UpdateScheduleRequest{
		UserID:                     userID,
		StoreID:                    storeID,
		Capacity:                   r.Capacity,
		AverageMealDurationMinutes: r.AverageMealDurationMinutes,
		AcceptsReservations:        r.AcceptsReservations,
		BusinessHours:              hours,
	}
}
