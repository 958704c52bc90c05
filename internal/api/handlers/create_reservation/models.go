package create_reservation

import (
	"time"

	"github.com/LoLe05/jarimae-sub001/internal/domain"
	createReservation "github.com/LoLe05/jarimae-sub001/internal/usecase/create_reservation"
	"github.com/LoLe05/jarimae-sub001/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	StoreID                  int64   `json:"storeId"`
	ReservationDate          string  `json:"reservationDate"` // "2026-03-15"
	ReservationTime          string  `json:"reservationTime"` // "18:30"
	PartySize                int     `json:"partySize"`
	EstimatedDurationMinutes *int    `json:"estimatedDurationMinutes,omitempty"`
	ContactName              string  `json:"contactName"`
	ContactPhone             string  `json:"contactPhone"`
	SpecialRequests          *string `json:"specialRequests,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID                       int64   `json:"id"`
	StoreID                  int64   `json:"storeId"`
	CustomerID               int64   `json:"customerId"`
	ReservationDate          string  `json:"reservationDate"`
	ReservationTime          string  `json:"reservationTime"`
	PartySize                int     `json:"partySize"`
	EstimatedDurationMinutes int     `json:"estimatedDurationMinutes"`
	Status                   string  `json:"status"`
	ContactName              string  `json:"contactName"`
	ContactPhone             string  `json:"contactPhone"`
	SpecialRequests          *string `json:"specialRequests,omitempty"`
	CreatedAt                string  `json:"createdAt"`
	UpdatedAt                string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(customerID int64) (*createReservation.Request, error) {
	// Парсим дату
	reservationDate, err := time.Parse(domain.DateFormat, r.ReservationDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	reservationTime, err := types.NewTimeStringFromString(r.ReservationTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		StoreID:                  r.StoreID,
		CustomerID:               customerID,
		Date:                     reservationDate,
		Time:                     reservationTime,
		PartySize:                r.PartySize,
		EstimatedDurationMinutes: r.EstimatedDurationMinutes,
		ContactName:              r.ContactName,
		ContactPhone:             r.ContactPhone,
		SpecialRequests:          r.SpecialRequests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:                       resp.ID,
		StoreID:                  resp.StoreID,
		CustomerID:               resp.CustomerID,
		ReservationDate:          resp.ReservationDate.Format(domain.DateFormat),
		ReservationTime:          resp.ReservationTime.String(),
		PartySize:                resp.PartySize,
		EstimatedDurationMinutes: resp.EstimatedDurationMinutes,
		Status:                   resp.Status,
		ContactName:              resp.ContactName,
		ContactPhone:             resp.ContactPhone,
		SpecialRequests:          resp.SpecialRequests,
		CreatedAt:                resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:                resp.UpdatedAt.Format(time.RFC3339),
	}
}
