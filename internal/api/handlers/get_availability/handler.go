package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/LoLe05/jarimae-sub001/internal/api/handlers"
	getAvailability "github.com/LoLe05/jarimae-sub001/internal/usecase/get_availability"
)

const (
	msgInvalidStoreID         = "некорректный ID заведения"
	msgMissingDate            = "дата обязательна"
	msgInvalidParams          = "некорректные параметры запроса, ожидается date=YYYY-MM-DD, partySize>=1, preferredTime=HH:MM"
	msgMissingPartySize       = "количество гостей обязательно"
	msgStoreNotFound          = "заведение не найдено"
	msgStoreInactive          = "заведение не активно"
	msgReservationsNotAccept  = "заведение не принимает брони"
	msgPartySizeExceeds       = "количество гостей превышает вместимость заведения"
	msgPreferredTimeOutside   = "желаемое время вне рабочих часов заведения"
	msgInvalidAvailabilityReq = "некорректный запрос доступности"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/stores/{storeId}/availability
// Query params: date (required, YYYY-MM-DD), partySize (required), preferredTime (optional, HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем storeId из URL
	storeIDStr := vars["storeId"]
	storeID, err := strconv.ParseInt(storeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/availability - Invalid store ID: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidStoreID)
		return
	}

	// Извлекаем обязательные query параметры
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /stores/{id}/availability - Missing date: store_id=%d", storeID)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgMissingDate)
		return
	}

	partySizeStr := r.URL.Query().Get("partySize")
	if partySizeStr == "" {
		h.logger.Warn("GET /stores/{id}/availability - Missing party size: store_id=%d", storeID)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgMissingPartySize)
		return
	}

	preferredTimeStr := r.URL.Query().Get("preferredTime")

	// Формируем запрос к use case (с парсингом даты и времени)
	useCaseReq, err := ToUseCaseRequest(storeID, dateStr, partySizeStr, preferredTimeStr)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/availability - Invalid parameters: store_id=%d, error=%v", storeID, err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrStoreNotFound):
			h.logger.Warn("GET /stores/{id}/availability - Store not found: store_id=%d", storeID)
			handlers.RespondNotFound(w, handlers.CodeStoreNotFound, msgStoreNotFound)

		case errors.Is(err, getAvailability.ErrStoreInactive):
			h.logger.Warn("GET /stores/{id}/availability - Store inactive: store_id=%d", storeID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, handlers.CodeStoreInactive, msgStoreInactive)

		case errors.Is(err, getAvailability.ErrReservationsNotAccepted):
			h.logger.Warn("GET /stores/{id}/availability - Reservations not accepted: store_id=%d", storeID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, handlers.CodeReservationsNotAccepted, msgReservationsNotAccept)

		case errors.Is(err, getAvailability.ErrPartySizeExceedsCapacity):
			h.logger.Warn("GET /stores/{id}/availability - Party size exceeds capacity: store_id=%d, party_size=%d",
				storeID, useCaseReq.PartySize)
			handlers.RespondError(w, http.StatusUnprocessableEntity, handlers.CodePartySizeExceedsCapacity, msgPartySizeExceeds)

		case errors.Is(err, getAvailability.ErrPreferredTimeOutsideHours):
			h.logger.Warn("GET /stores/{id}/availability - Preferred time outside hours: store_id=%d", storeID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, handlers.CodeOutsideBusinessHours, msgPreferredTimeOutside)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /stores/{id}/availability - Invalid input: store_id=%d, error=%v", storeID, err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidAvailabilityReq)

		default:
			h.logger.Error("GET /stores/{id}/availability - Failed to get availability: store_id=%d, error=%v",
				storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stores/{id}/availability - Availability calculated: store_id=%d, date=%s, available_slots=%d",
		storeID, dateStr, len(result.AvailableSlots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
