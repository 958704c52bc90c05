package get_store_reservations

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
	msgInvalidStoreID = "некорректный ID заведения"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgInvalidParams  = "некорректные параметры фильтрации"
	msgStoreNotFound  = "заведение не найдено"
	msgForbidden      = "доступ запрещен"
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

// Handle GET /api/v1/stores/{storeId}/reservations
// Query params: date | startDate+endDate, status, includeInactive (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем storeId из URL
	vars := mux.Vars(r)
	storeIDStr := vars["storeId"]

	storeID, err := strconv.ParseInt(storeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/reservations - Invalid store ID: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidStoreID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /stores/{id}/reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Извлекаем query параметры фильтрации
	query := r.URL.Query()

	// Формируем запрос к сервису
	serviceReq, err := ToServiceRequest(
		storeID,
		userID,
		query.Get("date"),
		query.Get("startDate"),
		query.Get("endDate"),
		query.Get("status"),
		query.Get("includeInactive"),
	)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/reservations - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidParams)
		return
	}

	// Получаем брони заведения (сервис сам проверит права владельца)
	result, err := h.service.GetStoreReservations(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrStoreNotFound):
			h.logger.Warn("GET /stores/{id}/reservations - Store not found: store_id=%d", storeID)
			handlers.RespondNotFound(w, handlers.CodeStoreNotFound, msgStoreNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /stores/{id}/reservations - Access denied: store_id=%d, user_id=%d",
				storeID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /stores/{id}/reservations - Invalid filter: store_id=%d, error=%v", storeID, err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidParams)

		default:
			h.logger.Error("GET /stores/{id}/reservations - Failed to get reservations: store_id=%d, error=%v",
				storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stores/{id}/reservations - Reservations retrieved successfully: store_id=%d, count=%d",
		storeID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result.Reservations)
}
