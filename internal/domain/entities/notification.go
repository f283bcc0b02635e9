package entities

import (
	"fmt"
	"time"
)

// NotificationLogEntry records one composed outbound message.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//
// This is an audit log of messages the system attempted to send, not a
// delivery receipt: dispatch is fire-and-forget over an external channel.

type NotificationLogEntry struct {
	ID             string    `json:"id"`
	JobID          string    `json:"job_id"`
	RecipientPhone string    `json:"recipient_phone"`
	Message        string    `json:"message"`
	Timestamp      time.Time `json:"timestamp"`
}

// ComposeStatusMessage builds the customer message for a status change.
//
// Only DIAGNOSING, REPAIRING, WAITING_PARTS and READY have templates; the
// initial CHECKED_IN stage is never auto-notified, so ok is false for it and
// for anything unknown. trackingLink is built by the messaging layer
// ({origin}?track={jobId}) and appended verbatim.
func ComposeStatusMessage(job Job, newStatus JobStatus, trackingLink string) (message string, ok bool) {
	vehicle := job.VehicleDescriptor()

	switch newStatus {
	case JobStatusDiagnosing:
		message = fmt.Sprintf("🔍 *MotoTrackr* Update\n\nYour %s is now being diagnosed.\nWe'll share findings shortly.", vehicle)
	case JobStatusRepairing:
		message = fmt.Sprintf("🛠️ *MotoTrackr* Update\n\nRepair work has started on your %s.\nYour ride is on the bench!", vehicle)
	case JobStatusWaitingParts:
		message = fmt.Sprintf("⏳ *MotoTrackr* Update\n\nYour %s is waiting for spare parts.\nWe'll notify you when they arrive.", vehicle)
	case JobStatusReady:
		message = fmt.Sprintf("✅ *MotoTrackr* - Job Complete!\n\nYour %s is READY FOR PICKUP.\nTotal Cost: UGX %d\n\nThank you for choosing MotoTrackr! 🏍️", vehicle, job.TotalCost())
	default:
		return "", false
	}

	if trackingLink != "" {
		message += "\n\nTrack progress: " + trackingLink
	}
	return message, true
}
