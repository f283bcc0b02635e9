package interfaces

import (
	"context"
	"mototrackr/internal/domain/entities"
)

// IJobRepository abstracts DynamoDB persistence for Job.
//
// Lookup methods take pre-normalized match keys (entities.PlateKey /
// entities.PhoneKey). A zero-value Job with a nil error means "not found";
// the usecase layer turns that into its own error.
//
// CostItems and Logs are append-only: the repository exposes append/prepend
// operations, never item-level edits or deletes.

type IJobRepository interface {
	Create(ctx context.Context, job entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context) ([]entities.Job, error)
	GetByPlateKey(ctx context.Context, plateKey string) (entities.Job, error)
	ListByPhoneKey(ctx context.Context, phoneKey string) ([]entities.Job, error)
	UpdateStatus(ctx context.Context, id string, status entities.JobStatus) (entities.Job, error)
	AppendCostItem(ctx context.Context, id string, item entities.CostItem) (entities.Job, error)
	PrependLogEntry(ctx context.Context, id string, entry entities.LogEntry) (entities.Job, error)
}
