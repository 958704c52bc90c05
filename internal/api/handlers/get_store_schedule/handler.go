package get_store_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/LoLe05/jarimae-sub001/internal/api/handlers"
	"github.com/LoLe05/jarimae-sub001/internal/service/stores"
)

const (
	msgInvalidStoreID = "некорректный ID заведения"
	msgStoreNotFound  = "заведение не найдено"
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

// Handle GET /api/v1/stores/{storeId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем storeId из URL
	vars := mux.Vars(r)
	storeIDStr := vars["storeId"]

	storeID, err := strconv.ParseInt(storeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/schedule - Invalid store ID: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidStoreID)
		return
	}

	// Получаем расписание заведения
	schedule, err := h.service.GetSchedule(r.Context(), storeID)
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrStoreNotFound):
			h.logger.Warn("GET /stores/{id}/schedule - Store not found: store_id=%d", storeID)
			handlers.RespondNotFound(w, handlers.CodeStoreNotFound, msgStoreNotFound)

		default:
			h.logger.Error("GET /stores/{id}/schedule - Failed to get schedule: store_id=%d, error=%v",
				storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stores/{id}/schedule - Schedule retrieved successfully: store_id=%d", storeID)
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
