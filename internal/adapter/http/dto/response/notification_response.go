package response

import (
	"time"

	"mototrackr/internal/domain/entities"
)

type NotificationResponse struct {
	ID             string    `json:"id"`
	JobID          string    `json:"job_id"`
	RecipientPhone string    `json:"recipient_phone"`
	Message        string    `json:"message"`
	Timestamp      time.Time `json:"timestamp"`
}

func FromNotificationLog(e entities.NotificationLogEntry) NotificationResponse {
	return NotificationResponse{
		ID:             e.ID,
		JobID:          e.JobID,
		RecipientPhone: e.RecipientPhone,
		Message:        e.Message,
		Timestamp:      e.Timestamp,
	}
}

func FromNotificationLogs(entries []entities.NotificationLogEntry) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromNotificationLog(e))
	}
	return out
}
