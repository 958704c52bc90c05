package update_reservation_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/LoLe05/jarimae-sub001/internal/api/handlers"
	"github.com/LoLe05/jarimae-sub001/internal/api/middleware"
	"github.com/LoLe05/jarimae-sub001/internal/service/reservations"
)

const (
	msgInvalidReservationID = "некорректный ID брони"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "бронь не найдена"
	msgForbidden            = "доступ запрещен"
	msgInvalidStatus        = "некорректный статус брони"
	msgInvalidTransition    = "недопустимый переход статуса"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем reservationId из URL
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidReservationID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidRequestBody)
		return
	}

	// Обновляем статус (сервис сам проверит права владельца и допустимость перехода)
	err = h.service.UpdateStatus(r.Context(), reservationID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/status - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, handlers.CodeReservationNotFound, msgNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{id}/status - Access denied: reservation_id=%d, user_id=%d",
				reservationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrStoreNotFound):
			h.logger.Warn("PATCH /reservations/{id}/status - Store not found for reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, handlers.CodeStoreNotFound, msgNotFound)

		case errors.Is(err, reservations.ErrInvalidStatusTransition):
			h.logger.Warn("PATCH /reservations/{id}/status - Invalid transition: reservation_id=%d, status=%s",
				reservationID, req.Status)
			handlers.RespondError(w, http.StatusUnprocessableEntity, handlers.CodeInvalidStatusTransition, msgInvalidTransition)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/status - Invalid status: reservation_id=%d, status=%s",
				reservationID, req.Status)
			handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /reservations/{id}/status - Failed to update status: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/status - Status updated successfully: reservation_id=%d, status=%s, user_id=%d",
		reservationID, req.Status, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
