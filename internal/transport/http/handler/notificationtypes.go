package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/notification-types-api/internal/application/catalog"
	"github.com/notification-types-api/internal/domain"
	"github.com/notification-types-api/internal/metrics"
	"github.com/notification-types-api/internal/pkg/validate"
	"github.com/notification-types-api/internal/transport/http/middleware"
)

// NotificationTypeHandler serves the notification type catalog.
type NotificationTypeHandler struct {
	svc catalog.Service
	m   *metrics.Metrics
}

func NewNotificationTypeHandler(svc catalog.Service, m *metrics.Metrics) *NotificationTypeHandler {
	return &NotificationTypeHandler{svc: svc, m: m}
}

// listQuery carries the validated query parameters for List. The format
// check is length-only; lang is not matched against a locale registry.
type listQuery struct {
	Lang string `validate:"min=2,max=5"`
}

// List godoc
// @Summary      List notification types
// @Description  Returns all available notification types with their localized descriptions. Unavailable types are hidden; deprecated types are flagged with a reason.
// @Tags         notifications
// @Produce      json
// @Param        lang  query     string  false  "Language code for localization (e.g. 'en', 'fr')"  default(en)
// @Success      200   {object}  ListEnvelope
// @Failure      401   {object}  ErrorEnvelope
// @Failure      422   {object}  ErrorEnvelope
// @Failure      500   {object}  ErrorEnvelope
// @Security     BearerAuth
// @Router       /api/notifications [get]
func (h *NotificationTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	q := listQuery{Lang: "en"}
	if lang := r.URL.Query().Get("lang"); lang != "" {
		q.Lang = lang
	}
	if err := validate.Struct(q); err != nil {
		slog.Error("invalid lang parameter", "err", err)
		writeJSON(w, http.StatusUnprocessableEntity, ErrorEnvelope{
			Detail: "Invalid request data.",
			Errors: validate.Fields(err),
		})
		return
	}

	if _, ok := middleware.ClaimsFromContext(r.Context()); !ok {
		// Unreachable behind the auth middleware; hard contract for any
		// handler mounted outside it.
		httpError(w, fmt.Errorf("no principal in request context: %w", domain.ErrUnauthorized))
		return
	}

	h.m.IncCatalogRequest()
	types, err := h.svc.List(r.Context(), q.Lang)
	if err != nil {
		if errors.Is(err, domain.ErrStore) {
			h.m.IncStoreError()
		}
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ListEnvelope{NotificationTypes: types})
}
