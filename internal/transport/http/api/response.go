package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"sipeka/internal/apperr"
)

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     *Error `json:"error,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Created(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusCreated, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Fail(w http.ResponseWriter, status int, code, message, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message}, RequestID: requestID})
}

// Problem writes a business-rule rejection using the error's kind, or
// a generic 500 with fallbackCode for anything unexpected.
func Problem(w http.ResponseWriter, err error, fallbackCode, requestID string) {
	if kind, ok := apperr.KindOf(err); ok {
		status, code := statusFor(kind)
		Fail(w, status, code, err.Error(), requestID)
		return
	}
	slog.Warn("request failed", "code", fallbackCode, "err", err)
	Fail(w, http.StatusInternalServerError, fallbackCode, "internal error", requestID)
}

func statusFor(kind apperr.Kind) (int, string) {
	switch kind {
	case apperr.KindAuth:
		return http.StatusForbidden, "forbidden"
	case apperr.KindNotFound:
		return http.StatusNotFound, "not_found"
	case apperr.KindConflict:
		return http.StatusConflict, "conflict"
	case apperr.KindValidation:
		return http.StatusBadRequest, "validation_error"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
