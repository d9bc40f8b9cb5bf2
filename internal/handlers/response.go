package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/glucose-tracker/internal/logger"
	"github.com/sbilibin2017/glucose-tracker/internal/middlewares"
	"github.com/sbilibin2017/glucose-tracker/internal/services"
)

// UserIDGetter returns the session user id stored in the request context.
type UserIDGetter func(ctx context.Context) (uuid.UUID, bool)

// ErrorResponse is the body of every error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: User not found
	Error string `json:"error"`
}

// MessageResponse is a bare confirmation
// swagger:model MessageResponse
type MessageResponse struct {
	// example: Logged out successfully
	Message string `json:"message"`
}

const (
	msgInternalError = "Internal server error"
	msgUnauthorized  = "Unauthorized"
	msgInvalidBody   = "Invalid request body"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps a service error to its status and message.
// 5xx failures are logged with the request id.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Msg)
	case errors.Is(err, services.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrRecordNotFound),
		errors.Is(err, services.ErrNoReadings):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrUpstreamUnavailable),
		errors.Is(err, services.ErrMalformedUpstreamResponse):
		logger.Log.Errorw("upstream failure",
			"request_id", middlewares.RequestIDFromContext(r.Context()),
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, msgInternalError)
	default:
		logger.Log.Errorw("internal server error",
			"request_id", middlewares.RequestIDFromContext(r.Context()),
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, msgInternalError)
	}
}

// sessionUser extracts the user id or answers 401.
func sessionUser(w http.ResponseWriter, r *http.Request, getter UserIDGetter) (uuid.UUID, bool) {
	userID, ok := getter(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return uuid.Nil, false
	}
	return userID, true
}
