package models

import (
	"errors"
	"time"

	"github.com/LoLe05/jarimae-sub001/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// CancelReservationRequest запрос на отмену брони
type CancelReservationRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса брони
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// GetUserReservationsRequest запрос на получение броней пользователя
type GetUserReservationsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetStoreReservationsRequest запрос на получение броней заведения
type GetStoreReservationsRequest struct {
	UserID          int64      `json:"userId"`
	StoreID         int64      `json:"storeId"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые и завершённые брони
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetStoreReservationsRequest) ToDomainFilter() (domain.StoreReservationsFilter, error) {
	filter := domain.StoreReservationsFilter{
		StoreID:         r.StoreID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	ID                       int64  `json:"id"`
	StoreID                  int64  `json:"storeId"`
	CustomerID               int64  `json:"customerId"`
	ReservationDate          string `json:"reservationDate"` // "2026-03-15"
	ReservationTime          string `json:"reservationTime"` // "18:30"
	PartySize                int    `json:"partySize"`
	EstimatedDurationMinutes int    `json:"estimatedDurationMinutes"`
	Status                   string `json:"status"`

	ContactName     string  `json:"contactName"`
	ContactPhone    string  `json:"contactPhone"`
	SpecialRequests *string `json:"specialRequests,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                       r.ID,
		StoreID:                  r.StoreID,
		CustomerID:               r.CustomerID,
		ReservationDate:          r.ReservationDate.Format(domain.DateFormat),
		ReservationTime:          r.ReservationTime.String(),
		PartySize:                r.PartySize,
		EstimatedDurationMinutes: r.EstimatedDurationMinutes,
		Status:                   string(r.Status),
		ContactName:              r.ContactName,
		ContactPhone:             r.ContactPhone,
		SpecialRequests:          r.SpecialRequests,
		CancellationReason:       r.CancellationReason,
		CreatedAt:                r.CreatedAt,
		UpdatedAt:                r.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if r.CancelledAt != nil {
		cancelledStr := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	if reservations == nil {
		return &ReservationListResponse{
			Reservations: []ReservationResponse{},
		}
	}

	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, len(reservations)),
	}

	for i, reservation := range reservations {
		if reservationResp := FromDomainReservation(reservation); reservationResp != nil {
			resp.Reservations[i] = *reservationResp
		}
	}

	return resp
}

// ToDomainReservationStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)

	// Валидируем статус
	validStatuses := []domain.ReservationStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCancelled,
		domain.StatusCompleted,
		domain.StatusNoShow,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
