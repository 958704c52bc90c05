package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Машинные коды ошибок API. Человекочитаемое сообщение локализовано,
// код стабилен и предназначен для программной обработки клиентом.
const (
	CodeInvalidRequest           = "INVALID_REQUEST"
	CodeUnauthorized             = "UNAUTHORIZED"
	CodeAccessDenied             = "ACCESS_DENIED"
	CodeStoreNotFound            = "STORE_NOT_FOUND"
	CodeStoreInactive            = "STORE_INACTIVE"
	CodeReservationsNotAccepted  = "RESERVATIONS_NOT_ACCEPTED"
	CodePartySizeExceedsCapacity = "PARTY_SIZE_EXCEEDS_CAPACITY"
	CodeStoreClosed              = "STORE_CLOSED"
	CodeOutsideBusinessHours     = "OUTSIDE_BUSINESS_HOURS"
	CodeTimeSlotUnavailable      = "TIME_SLOT_UNAVAILABLE"
	CodeReservationNotFound      = "RESERVATION_NOT_FOUND"
	CodeInvalidStatusTransition  = "INVALID_STATUS_TRANSITION"
	CodeCannotCancel             = "CANNOT_CANCEL"
	CodeInvalidSchedule          = "INVALID_SCHEDULE"
	CodeTooManyRequests          = "TOO_MANY_REQUESTS"
	CodeCodeMismatch             = "CODE_MISMATCH"
	CodeCodeNotFound             = "CODE_NOT_FOUND"
	CodeInternalError            = "INTERNAL_ERROR"
)

const msgInternalError = "внутренняя ошибка сервера"

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrEmptyBody возвращается при пустом теле запроса
var ErrEmptyBody = errors.New("handlers: empty request body")

// DecodeJSON декодирует JSON тело запроса в dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("handlers: failed to decode request body: %w", err)
	}

	return nil
}

// RespondJSON пишет успешный JSON ответ
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload != nil {
		// Ошибку кодирования уже не вернуть клиенту - заголовки отправлены
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError пишет JSON ответ с ошибкой
func RespondError(w http.ResponseWriter, status int, code string, message string) {
	RespondJSON(w, status, ErrorResponse{Code: code, Message: message})
}

// RespondBadRequest пишет ответ 400
func RespondBadRequest(w http.ResponseWriter, code string, message string) {
	RespondError(w, http.StatusBadRequest, code, message)
}

// RespondUnauthorized пишет ответ 401
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, CodeUnauthorized, message)
}

// RespondForbidden пишет ответ 403
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, CodeAccessDenied, message)
}

// RespondNotFound пишет ответ 404
func RespondNotFound(w http.ResponseWriter, code string, message string) {
	RespondError(w, http.StatusNotFound, code, message)
}

// RespondConflict пишет ответ 409
func RespondConflict(w http.ResponseWriter, code string, message string) {
	RespondError(w, http.StatusConflict, code, message)
}

// RespondTooManyRequests пишет ответ 429
func RespondTooManyRequests(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusTooManyRequests, CodeTooManyRequests, message)
}

// RespondInternalError пишет ответ 500
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeInternalError, msgInternalError)
}
