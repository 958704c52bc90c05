package confirm_verification

import (
	"errors"
	"net/http"

	"github.com/LoLe05/jarimae-sub001/internal/api/handlers"
	"github.com/LoLe05/jarimae-sub001/internal/service/verification"
	"github.com/LoLe05/jarimae-sub001/internal/service/verification/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgCodeNotFound       = "код не найден или истёк"
	msgCodeMismatch       = "неверный код подтверждения"
	msgInvalidConfirm     = "идентификатор выдачи и код обязательны"
)

type Handler struct {
	service VerificationService
	logger  Logger
}

func NewHandler(service VerificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/verification-codes/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ConfirmCodeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/verification-codes/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidRequestBody)
		return
	}

	// Проверяем код подтверждения
	result, err := h.service.Confirm(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, verification.ErrCodeNotFound):
			h.logger.Warn("POST /auth/verification-codes/confirm - Code not found: verification_id=%s", req.VerificationID)
			handlers.RespondNotFound(w, handlers.CodeCodeNotFound, msgCodeNotFound)

		case errors.Is(err, verification.ErrCodeMismatch):
			h.logger.Warn("POST /auth/verification-codes/confirm - Code mismatch: verification_id=%s", req.VerificationID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, handlers.CodeCodeMismatch, msgCodeMismatch)

		case errors.Is(err, verification.ErrInvalidInput):
			h.logger.Warn("POST /auth/verification-codes/confirm - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidConfirm)

		default:
			h.logger.Error("POST /auth/verification-codes/confirm - Failed to confirm code: verification_id=%s, error=%v",
				req.VerificationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/verification-codes/confirm - Code confirmed successfully: verification_id=%s", req.VerificationID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
