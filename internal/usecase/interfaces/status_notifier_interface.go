package interfaces

import (
	"context"
	"mototrackr/internal/domain/entities"
)

// IStatusNotifier reacts to a persisted status transition. It is invoked
// out-of-band by the job usecase: whatever it does (composing, auditing,
// dispatching) must never fail or roll back the transition itself.

type IStatusNotifier interface {
	NotifyStatusChange(ctx context.Context, job entities.Job, newStatus entities.JobStatus)
}
