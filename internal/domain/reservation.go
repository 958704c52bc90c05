package domain

import (
	"time"

	"github.com/LoLe05/jarimae-sub001/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "PENDING"
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCancelled ReservationStatus = "CANCELLED"
	StatusCompleted ReservationStatus = "COMPLETED"
	StatusNoShow    ReservationStatus = "NO_SHOW"
)

// Reservation represents a table reservation in the system
type Reservation struct {
	ID         int64
	StoreID    int64
	CustomerID int64

	ReservationDate time.Time        // дата брони без времени
	ReservationTime types.TimeString // локальное время заведения, без таймзоны
	PartySize       int
	// EstimatedDurationMinutes длительность посадки; при создании
	// по умолчанию равна средней длительности посадки заведения
	EstimatedDurationMinutes int
	Status                   ReservationStatus

	ContactName     string
	ContactPhone    string
	SpecialRequests *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation occupies store capacity.
// Только PENDING и CONFIRMED участвуют в расчёте доступности.
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsTerminal returns true if the reservation reached a final status.
// Терминальные брони неизменяемы для целей вместимости.
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusCancelled || r.Status == StatusCompleted || r.Status == StatusNoShow
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanTransitionTo returns true if the status change is legal
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	if r.IsTerminal() {
		return false
	}

	switch r.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled || next == StatusCompleted || next == StatusNoShow
	default:
		return false
	}
}

// Interval возвращает полуинтервал занятости брони [start, end) в минутах
// от начала суток. Брони с некорректным временем считаются не занимающими
// вместимость.
func (r *Reservation) Interval() (start, end int, ok bool) {
	start, err := r.ReservationTime.Minutes()
	if err != nil {
		return 0, 0, false
	}
	return start, start + r.EstimatedDurationMinutes, true
}

// StoreReservationsFilter фильтр для получения броней заведения
type StoreReservationsFilter struct {
	StoreID         int64              // Обязательный параметр
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли терминальные брони
}
