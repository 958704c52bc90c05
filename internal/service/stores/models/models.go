package models

import (
	"github.com/LoLe05/jarimae-sub001/internal/domain"
	"github.com/LoLe05/jarimae-sub001/pkg/types"
)

// Request модели

// BusinessHourInput одна строка недельного расписания в запросе
type BusinessHourInput struct {
	DayOfWeek int    `json:"dayOfWeek"`           // 0 = воскресенье ... 6 = суббота
	OpenTime  string `json:"openTime,omitempty"`  // "10:00", пусто для выходного дня
	CloseTime string `json:"closeTime,omitempty"` // "22:00", пусто для выходного дня
	IsClosed  bool   `json:"isClosed"`
}

// UpdateScheduleRequest запрос на обновление настроек броней и расписания заведения
type UpdateScheduleRequest struct {
	UserID                     int64               `json:"userId"`
	StoreID                    int64               `json:"storeId"`
	Capacity                   int                 `json:"capacity"`
	AverageMealDurationMinutes int                 `json:"averageMealDurationMinutes"`
	AcceptsReservations        bool                `json:"acceptsReservations"`
	BusinessHours              []BusinessHourInput `json:"businessHours"`
}

// ToDomainBusinessHours конвертирует строки расписания в domain модели
func (r *UpdateScheduleRequest) ToDomainBusinessHours() []domain.BusinessHour {
	hours := make([]domain.BusinessHour, len(r.BusinessHours))
	for i, h := range r.BusinessHours {
		hours[i] = domain.BusinessHour{
			DayOfWeek: h.DayOfWeek,
			OpenTime:  types.TimeString(h.OpenTime),
			CloseTime: types.TimeString(h.CloseTime),
			IsClosed:  h.IsClosed,
		}
	}
	return hours
}

// Response модели

// BusinessHourResponse одна строка недельного расписания в ответе
type BusinessHourResponse struct {
	DayOfWeek int    `json:"dayOfWeek"`
	OpenTime  string `json:"openTime,omitempty"`
	CloseTime string `json:"closeTime,omitempty"`
	IsClosed  bool   `json:"isClosed"`
}

// ScheduleResponse ответ с настройками броней и расписанием заведения
type ScheduleResponse struct {
	StoreID                    int64                  `json:"storeId"`
	Capacity                   int                    `json:"capacity"`
	AverageMealDurationMinutes int                    `json:"averageMealDurationMinutes"`
	AcceptsReservations        bool                   `json:"acceptsReservations"`
	BusinessHours              []BusinessHourResponse `json:"businessHours"`
}

// Методы конвертации

// FromDomainStore конвертирует domain модель заведения в DTO расписания
func FromDomainStore(s *domain.Store) *ScheduleResponse {
	if s == nil {
		return nil
	}

	resp := &ScheduleResponse{
		StoreID:                    s.ID,
		Capacity:                   s.Capacity,
		AverageMealDurationMinutes: s.AverageMealDurationMinutes,
		AcceptsReservations:        s.AcceptsReservations,
		BusinessHours:              make([]BusinessHourResponse, len(s.BusinessHours)),
	}

	for i, h := range s.BusinessHours {
		resp.BusinessHours[i] = BusinessHourResponse{
			DayOfWeek: h.DayOfWeek,
			IsClosed:  h.IsClosed,
		}
		// Для выходного дня времена не отдаём
		if !h.IsClosed {
			resp.BusinessHours[i].OpenTime = h.OpenTime.String()
			resp.BusinessHours[i].CloseTime = h.CloseTime.String()
		}
	}

	return resp
}
