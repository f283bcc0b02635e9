package usecase

import (
	"context"
	"errors"
	"mototrackr/internal/domain/entities"
	"mototrackr/internal/usecase/interfaces"
	"strings"
)

var (
	ErrInvalidPlate = errors.New("invalid plate number")
	ErrInvalidPhone = errors.New("invalid phone number")
)

// ITrackUseCase is the customer-facing lookup layer: pure queries over the
// job store, no mutations.
//
// Branching policy for phone lookups lives with the caller: zero matches is
// a not-found outcome, one match routes to the status view, more than one
// routes to the history view.

type ITrackUseCase interface {
	TrackByID(ctx context.Context, id string) (entities.Job, error)
	TrackByPlate(ctx context.Context, plate string) (entities.Job, error)
	TrackByPhone(ctx context.Context, phone string) ([]entities.Job, error)
	History(ctx context.Context, phone string) (entities.Customer, []entities.Job, error)
}

type TrackUseCase struct {
	repo interfaces.IJobRepository
}

var _ ITrackUseCase = (*TrackUseCase)(nil)

func NewTrackUseCase(repo interfaces.IJobRepository) *TrackUseCase {
	return &TrackUseCase{repo: repo}
}

func (u *TrackUseCase) TrackByID(ctx context.Context, id string) (entities.Job, error) {
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

func (u *TrackUseCase) TrackByPlate(ctx context.Context, plate string) (entities.Job, error) {
	key := entities.PlateKey(plate)
	if key == "" {
		return entities.Job{}, ErrInvalidPlate
	}

	job, err := u.repo.GetByPlateKey(ctx, key)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}

func (u *TrackUseCase) TrackByPhone(ctx context.Context, phone string) ([]entities.Job, error) {
	key := entities.PhoneKey(phone)
	if key == "" {
		return nil, ErrInvalidPhone
	}

	jobs, err := u.repo.ListByPhoneKey(ctx, key)
	if err != nil {
		return nil, err
	}
	entities.SortJobsNewestFirst(jobs)
	return jobs, nil
}

func (u *TrackUseCase) History(ctx context.Context, phone string) (entities.Customer, []entities.Job, error) {
	jobs, err := u.TrackByPhone(ctx, phone)
	if err != nil {
		return entities.Customer{}, nil, err
	}
	return entities.CustomerFromJobs(jobs), jobs, nil
}
