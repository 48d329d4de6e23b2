package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/notification-types-api/internal/domain"
	"github.com/notification-types-api/internal/pkg/validate"
)

// ErrorEnvelope is the stable error response shape. Errors is only set for
// request validation failures.
type ErrorEnvelope struct {
	Detail string                `json:"detail"`
	Errors []validate.FieldError `json:"errors,omitempty"`
}

// ListEnvelope wraps the notification type list response.
type ListEnvelope struct {
	NotificationTypes []domain.NotificationType `json:"notification_types"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrorEnvelope{Detail: detail})
}

// httpError translates classified failures into (status, body) pairs. The
// cause is logged here; response bodies never carry internal error text.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		slog.Info("unauthenticated request reached handler", "err", err)
		writeError(w, http.StatusUnauthorized, "Authentication required. Please log in.")
	case errors.Is(err, domain.ErrInvalidRequest):
		slog.Error("invalid request data", "err", err)
		writeError(w, http.StatusUnprocessableEntity, "Invalid request data.")
	case errors.Is(err, domain.ErrStore):
		slog.Error("record store failure", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch notification types. Please try again later.")
	default:
		slog.Error("unhandled error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error. Please try again later.")
	}
}
