package usecase

import (
	"context"
	"errors"
	"log"
	"mototrackr/internal/domain/entities"
	"mototrackr/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidNotificationJobID = errors.New("invalid notification job id")

// INotificationUseCase composes and records customer messages for status
// transitions and serves the per-job notification history.

type INotificationUseCase interface {
	interfaces.IStatusNotifier
	ListByJobID(ctx context.Context, jobID string) ([]entities.NotificationLogEntry, error)
}

// NotificationUseCase implements the transition side effect:
// compose -> append to the audit log -> dispatch.
//
// Dispatch is fire-and-forget: every failure past composition is logged and
// swallowed, so a broken channel can never block or roll back the status
// change that triggered it. The optional guard suppresses duplicate
// dispatch when the same (job, status) transition is replayed; the audit
// entry is still written so history reflects every composed message.

type NotificationUseCase struct {
	repo       interfaces.INotificationLogRepository
	dispatcher interfaces.IMessageDispatcher
	guard      interfaces.IDispatchGuard
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(
	repo interfaces.INotificationLogRepository,
	dispatcher interfaces.IMessageDispatcher,
	guard interfaces.IDispatchGuard,
) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, dispatcher: dispatcher, guard: guard}
}

func (u *NotificationUseCase) NotifyStatusChange(ctx context.Context, job entities.Job, newStatus entities.JobStatus) {
	trackingLink := ""
	if u.dispatcher != nil {
		trackingLink = u.dispatcher.TrackingLink(job.ID)
	}

	message, ok := entities.ComposeStatusMessage(job, newStatus, trackingLink)
	if !ok {
		return
	}

	entry := entities.NotificationLogEntry{
		ID:             uuid.NewString(),
		JobID:          job.ID,
		RecipientPhone: job.CustomerPhone,
		Message:        message,
		Timestamp:      time.Now().UTC(),
	}
	if u.repo != nil {
		if _, err := u.repo.Create(ctx, entry); err != nil {
			log.Printf("[notify][usecase] audit log append failed job_id=%s status=%s err=%v", job.ID, newStatus, err)
		}
	}

	if u.dispatcher == nil {
		log.Printf("[notify][usecase] no dispatcher configured job_id=%s status=%s", job.ID, newStatus)
		return
	}

	if u.guard != nil {
		first, err := u.guard.Acquire(ctx, dispatchGuardKey(job.ID, newStatus))
		if err != nil {
			// Guard trouble must not cost the customer a message.
			log.Printf("[notify][usecase] dispatch guard unavailable job_id=%s status=%s err=%v", job.ID, newStatus, err)
		} else if !first {
			log.Printf("[notify][usecase] duplicate transition, dispatch suppressed job_id=%s status=%s", job.ID, newStatus)
			return
		}
	}

	if err := u.dispatcher.Send(ctx, job.CustomerPhone, message); err != nil {
		log.Printf("[notify][usecase] dispatch failed job_id=%s status=%s err=%v", job.ID, newStatus, err)
		return
	}
	log.Printf("[notify][usecase] dispatched job_id=%s status=%s", job.ID, newStatus)
}

func (u *NotificationUseCase) ListByJobID(ctx context.Context, jobID string) ([]entities.NotificationLogEntry, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidNotificationJobID
	}
	return u.repo.ListByJobID(ctx, jobID)
}

func dispatchGuardKey(jobID string, status entities.JobStatus) string {
	return "notif:" + jobID + ":" + string(status)
}
