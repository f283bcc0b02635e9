package interfaces

import (
	"context"
	"mototrackr/internal/domain/entities"
)

// INotificationLogRepository abstracts DynamoDB persistence for the
// append-only notification audit log.

type INotificationLogRepository interface {
	Create(ctx context.Context, entry entities.NotificationLogEntry) (entities.NotificationLogEntry, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.NotificationLogEntry, error)
}
