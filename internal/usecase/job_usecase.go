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

var (
	ErrJobNotFound          = errors.New("job not found")
	ErrInvalidJobID         = errors.New("invalid job id")
	ErrMissingCustomerName  = errors.New("missing customer name")
	ErrMissingCustomerPhone = errors.New("missing customer phone")
	ErrMissingVehicle       = errors.New("missing vehicle descriptor")
	ErrMissingIssueType     = errors.New("missing issue type")
	ErrInvalidStatus        = errors.New("invalid job status")
	ErrInvalidCostAmount    = errors.New("invalid cost amount")
	ErrEmptyCostDescription = errors.New("empty cost description")
	ErrEmptyLogMessage      = errors.New("empty log message")
)

// CreateJobCommand carries the required fields of the "open job" action.
type CreateJobCommand struct {
	CustomerName     string
	CustomerPhone    string
	VehicleModel     string
	PlateNumber      string
	IssueType        string
	IssueDescription string
}

// IJobUseCase exposes the job card operations used by the mechanic side:
// open a card, read the shop floor, move status, grow the cost ledger and
// the work log.

type IJobUseCase interface {
	CreateJob(ctx context.Context, cmd CreateJobCommand) (entities.Job, error)
	GetJob(ctx context.Context, id string) (entities.Job, error)
	ListJobs(ctx context.Context) ([]entities.Job, error)
	UpdateStatus(ctx context.Context, id string, status entities.JobStatus) (entities.Job, error)
	AddCostItem(ctx context.Context, id, description string, amount int64) (entities.Job, error)
	AddLogEntry(ctx context.Context, id, message string) (entities.Job, error)
}

type JobUseCase struct {
	repo     interfaces.IJobRepository
	notifier interfaces.IStatusNotifier
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository, notifier interfaces.IStatusNotifier) *JobUseCase {
	return &JobUseCase{repo: repo, notifier: notifier}
}

func (u *JobUseCase) CreateJob(ctx context.Context, cmd CreateJobCommand) (entities.Job, error) {
	name := strings.TrimSpace(cmd.CustomerName)
	phone := strings.TrimSpace(cmd.CustomerPhone)
	vehicle := strings.TrimSpace(cmd.VehicleModel)
	plate := strings.ToUpper(strings.TrimSpace(cmd.PlateNumber))
	issueType := strings.TrimSpace(cmd.IssueType)

	if name == "" {
		return entities.Job{}, ErrMissingCustomerName
	}
	if phone == "" {
		return entities.Job{}, ErrMissingCustomerPhone
	}
	// Either a model or a plate identifies the vehicle; both empty is a
	// card nobody can match later.
	if vehicle == "" && plate == "" {
		return entities.Job{}, ErrMissingVehicle
	}
	if issueType == "" {
		return entities.Job{}, ErrMissingIssueType
	}

	now := time.Now()
	job := entities.Job{
		ID:               uuid.NewString(),
		CustomerName:     name,
		CustomerPhone:    phone,
		VehicleModel:     vehicle,
		PlateNumber:      plate,
		IssueType:        issueType,
		IssueDescription: strings.TrimSpace(cmd.IssueDescription),
		Status:           entities.JobStatusCheckedIn,
		EntryDate:        now,
		CostItems:        []entities.CostItem{},
		Logs: []entities.LogEntry{{
			ID:        uuid.NewString(),
			Timestamp: now.Format("15:04"),
			Message:   "Job card opened.",
		}},
		Visuals:   []string{},
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
	return u.repo.Create(ctx, job)
}

func (u *JobUseCase) GetJob(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	job, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}

func (u *JobUseCase) ListJobs(ctx context.Context) ([]entities.Job, error) {
	jobs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	entities.SortJobsNewestFirst(jobs)
	return jobs, nil
}

// UpdateStatus applies the transition unconditionally: any status may move
// to any other status, including a no-op and back from READY. The status
// field is the only thing persisted here; notification is an out-of-band
// effect whose failure never surfaces as a transition failure.
func (u *JobUseCase) UpdateStatus(ctx context.Context, id string, status entities.JobStatus) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if !status.IsValid() {
		return entities.Job{}, ErrInvalidStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}

	if u.notifier != nil {
		u.notifier.NotifyStatusChange(ctx, updated, status)
	}
	return updated, nil
}

func (u *JobUseCase) AddCostItem(ctx context.Context, id, description string, amount int64) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return entities.Job{}, ErrEmptyCostDescription
	}
	if amount < 0 {
		return entities.Job{}, ErrInvalidCostAmount
	}

	item := entities.CostItem{
		ID:          uuid.NewString(),
		Description: description,
		Amount:      amount,
	}
	updated, err := u.repo.AppendCostItem(ctx, id, item)
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	log.Printf("[job][usecase] cost item added job_id=%s amount=%d total=%d", id, amount, updated.TotalCost())
	return updated, nil
}

func (u *JobUseCase) AddLogEntry(ctx context.Context, id, message string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return entities.Job{}, ErrEmptyLogMessage
	}

	entry := entities.LogEntry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().Format("15:04"),
		Message:   message,
	}
	updated, err := u.repo.PrependLogEntry(ctx, id, entry)
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return updated, nil
}
