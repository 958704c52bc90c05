package create_reservation

import (
	"errors"
	"net/http"

	"github.com/LoLe05/jarimae-sub001/internal/api/handlers"
	"github.com/LoLe05/jarimae-sub001/internal/api/middleware"
	createReservation "github.com/LoLe05/jarimae-sub001/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDateTime       = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgStoreNotFound         = "заведение не найдено"
	msgStoreInactive         = "заведение не активно"
	msgReservationsNotAccept = "заведение не принимает брони"
	msgPartySizeExceeds      = "количество гостей превышает вместимость заведения"
	msgStoreClosed           = "заведение закрыто в выбранную дату"
	msgOutsideBusinessHours  = "время брони вне рабочих часов заведения"
	msgTimeSlotUnavailable   = "выбранное время недоступно"
	msgInvalidReservation    = "некорректные данные брони"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidDateTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrStoreNotFound):
			h.logger.Warn("POST /reservations - Store not found: store_id=%d", req.StoreID)
			handlers.RespondNotFound(w, handlers.CodeStoreNotFound, msgStoreNotFound)

		case errors.Is(err, createReservation.ErrStoreInactive):
			h.logger.Warn("POST /reservations - Store inactive: store_id=%d", req.StoreID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, handlers.CodeStoreInactive, msgStoreInactive)

		case errors.Is(err, createReservation.ErrReservationsNotAccepted):
			h.logger.Warn("POST /reservations - Reservations not accepted: store_id=%d", req.StoreID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, handlers.CodeReservationsNotAccepted, msgReservationsNotAccept)

		case errors.Is(err, createReservation.ErrPartySizeExceedsCapacity):
			h.logger.Warn("POST /reservations - Party size exceeds capacity: store_id=%d, party_size=%d",
				req.StoreID, req.PartySize)
			handlers.RespondError(w, http.StatusUnprocessableEntity, handlers.CodePartySizeExceedsCapacity, msgPartySizeExceeds)

		case errors.Is(err, createReservation.ErrStoreClosed):
			h.logger.Warn("POST /reservations - Store closed: store_id=%d, date=%s", req.StoreID, req.ReservationDate)
			handlers.RespondError(w, http.StatusUnprocessableEntity, handlers.CodeStoreClosed, msgStoreClosed)

		case errors.Is(err, createReservation.ErrOutsideBusinessHours):
			h.logger.Warn("POST /reservations - Outside business hours: store_id=%d, time=%s",
				req.StoreID, req.ReservationTime)
			handlers.RespondError(w, http.StatusUnprocessableEntity, handlers.CodeOutsideBusinessHours, msgOutsideBusinessHours)

		case errors.Is(err, createReservation.ErrTimeSlotUnavailable):
			h.logger.Warn("POST /reservations - Time slot unavailable: store_id=%d, date=%s, time=%s",
				req.StoreID, req.ReservationDate, req.ReservationTime)
			handlers.RespondConflict(w, handlers.CodeTimeSlotUnavailable, msgTimeSlotUnavailable)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: store_id=%d, error=%v", req.StoreID, err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidReservation)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: store_id=%d, customer_id=%d, error=%v",
				req.StoreID, customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, store_id=%d, customer_id=%d",
		result.ID, req.StoreID, customerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
