package request_verification

import (
	"errors"
	"net/http"

	"github.com/LoLe05/jarimae-sub001/internal/api/handlers"
	"github.com/LoLe05/jarimae-sub001/internal/service/verification"
	"github.com/LoLe05/jarimae-sub001/internal/service/verification/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPhone       = "некорректный номер телефона"
	msgTooManyRequests    = "слишком много запросов кода, попробуйте позже"
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

// Handle POST /api/v1/auth/verification-codes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.IssueCodeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/verification-codes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidRequestBody)
		return
	}

	// Выдаём код подтверждения
	result, err := h.service.Issue(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, verification.ErrInvalidPhone):
			h.logger.Warn("POST /auth/verification-codes - Invalid phone format")
			handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidPhone)

		case errors.Is(err, verification.ErrTooManyRequests):
			h.logger.Warn("POST /auth/verification-codes - Rate limit exceeded")
			handlers.RespondTooManyRequests(w, msgTooManyRequests)

		default:
			h.logger.Error("POST /auth/verification-codes - Failed to issue code: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/verification-codes - Code issued successfully: verification_id=%s", result.VerificationID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
