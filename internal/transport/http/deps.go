package http

import (
	"context"

	"github.com/notification-types-api/internal/domain"
)

// NotificationTypeRepository is the minimal interface the router requires
// from the notification type record store. Scan returns every record;
// availability filtering is the catalog service's job.
type NotificationTypeRepository interface {
	Scan(ctx context.Context) ([]domain.NotificationType, error)
}
