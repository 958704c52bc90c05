package update_store_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/LoLe05/jarimae-sub001/internal/api/handlers"
	"github.com/LoLe05/jarimae-sub001/internal/api/middleware"
	"github.com/LoLe05/jarimae-sub001/internal/service/stores"
)

const (
	msgInvalidStoreID     = "некорректный ID заведения"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgStoreNotFound      = "заведение не найдено"
	msgForbidden          = "доступ запрещен"
	msgInvalidSchedule    = "некорректное недельное расписание"
	msgInvalidSettings    = "некорректные настройки броней"
)

type Handler struct {
	service StoreService
	logger  Logger
}

func NewHandler(service StoreService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/stores/{storeId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем storeId из URL
	vars := mux.Vars(r)
	storeIDStr := vars["storeId"]

	storeID, err := strconv.ParseInt(storeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /stores/{id}/schedule - Invalid store ID: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidStoreID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /stores/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /stores/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidRequestBody)
		return
	}

	// Обновляем расписание (сервис сам проверит права владельца)
	result, err := h.service.UpdateSchedule(r.Context(), req.ToServiceRequest(storeID, userID))
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrStoreNotFound):
			h.logger.Warn("PUT /stores/{id}/schedule - Store not found: store_id=%d", storeID)
			handlers.RespondNotFound(w, handlers.CodeStoreNotFound, msgStoreNotFound)

		case errors.Is(err, stores.ErrAccessDenied):
			h.logger.Warn("PUT /stores/{id}/schedule - Access denied: store_id=%d, user_id=%d", storeID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, stores.ErrInvalidSchedule):
			h.logger.Warn("PUT /stores/{id}/schedule - Invalid schedule: store_id=%d, error=%v", storeID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, handlers.CodeInvalidSchedule, msgInvalidSchedule)

		case errors.Is(err, stores.ErrInvalidInput):
			h.logger.Warn("PUT /stores/{id}/schedule - Invalid settings: store_id=%d, error=%v", storeID, err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidSettings)

		default:
			h.logger.Error("PUT /stores/{id}/schedule - Failed to update schedule: store_id=%d, error=%v",
				storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /stores/{id}/schedule - Schedule updated successfully: store_id=%d, user_id=%d",
		storeID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
