package usecase

import (
	"context"
	"errors"
	"testing"

	"mototrackr/internal/domain/entities"
	mock_interfaces "mototrackr/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestJobUseCase_CreateJob(t *testing.T) {
	valid := CreateJobCommand{
		CustomerName:     "Musa K.",
		CustomerPhone:    "0772 123 456",
		VehicleModel:     "Boxer 150",
		PlateNumber:      "ueb 123k",
		IssueType:        "Engine",
		IssueDescription: "Won't start in the morning",
	}

	t.Run("missing required fields", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil)

		cases := []struct {
			name string
			mod  func(c *CreateJobCommand)
			want error
		}{
			{"customer name", func(c *CreateJobCommand) { c.CustomerName = "   " }, ErrMissingCustomerName},
			{"customer phone", func(c *CreateJobCommand) { c.CustomerPhone = "" }, ErrMissingCustomerPhone},
			{"vehicle", func(c *CreateJobCommand) { c.VehicleModel = ""; c.PlateNumber = " " }, ErrMissingVehicle},
			{"issue type", func(c *CreateJobCommand) { c.IssueType = "\t" }, ErrMissingIssueType},
		}
		for _, tc := range cases {
			cmd := valid
			tc.mod(&cmd)
			if _, err := uc.CreateJob(context.Background(), cmd); !errors.Is(err, tc.want) {
				t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
			}
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Job{}, errors.New("db"))

		_, err := uc.CreateJob(context.Background(), valid)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.ID == "" {
					t.Fatalf("expected generated id")
				}
				if j.Status != entities.JobStatusCheckedIn {
					t.Fatalf("expected CHECKED_IN initial status, got %s", j.Status)
				}
				if j.PlateNumber != "UEB 123K" {
					t.Fatalf("expected uppercased plate, got %q", j.PlateNumber)
				}
				if j.CustomerPhone != "0772 123 456" {
					t.Fatalf("stored phone must keep its spacing, got %q", j.CustomerPhone)
				}
				if len(j.CostItems) != 0 {
					t.Fatalf("expected empty cost ledger")
				}
				if len(j.Logs) != 1 || j.Logs[0].Message != "Job card opened." {
					t.Fatalf("expected seed log entry, got %+v", j.Logs)
				}
				if j.EntryDate.IsZero() || j.Logs[0].Timestamp == "" {
					t.Fatalf("expected timestamps")
				}
				return j, nil
			},
		)

		job, err := uc.CreateJob(context.Background(), valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.IssueType != "Engine" {
			t.Fatalf("unexpected issue type: %q", job.IssueType)
		}
	})
}

func TestJobUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil)
		if _, err := uc.UpdateStatus(context.Background(), "  ", entities.JobStatusReady); !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil)
		if _, err := uc.UpdateStatus(context.Background(), "j1", entities.JobStatus("FIXING")); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		repo.EXPECT().UpdateStatus(gomock.Any(), "j1", entities.JobStatusReady).Return(entities.Job{}, nil)

		if _, err := uc.UpdateStatus(context.Background(), "j1", entities.JobStatusReady); !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("any pair is legal including no-op and backwards", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		notifier := mock_interfaces.NewMockIStatusNotifier(ctrl)
		uc := NewJobUseCase(repo, notifier)

		pairs := []entities.JobStatus{
			entities.JobStatusReady,
			entities.JobStatusDiagnosing, // back from READY
			entities.JobStatusDiagnosing, // no-op
			entities.JobStatusWaitingParts,
		}
		for _, s := range pairs {
			repo.EXPECT().UpdateStatus(gomock.Any(), "j1", s).Return(entities.Job{ID: "j1", Status: s}, nil)
			notifier.EXPECT().NotifyStatusChange(gomock.Any(), entities.Job{ID: "j1", Status: s}, s)
		}

		var last entities.Job
		for _, s := range pairs {
			job, err := uc.UpdateStatus(context.Background(), "j1", s)
			if err != nil {
				t.Fatalf("transition to %s failed: %v", s, err)
			}
			last = job
		}
		if last.Status != entities.JobStatusWaitingParts {
			t.Fatalf("expected final status WAITING_PARTS, got %s", last.Status)
		}
	})

	t.Run("ready then diagnosing ends diagnosing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		repo.EXPECT().UpdateStatus(gomock.Any(), "j1", entities.JobStatusReady).Return(entities.Job{ID: "j1", Status: entities.JobStatusReady}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "j1", entities.JobStatusDiagnosing).Return(entities.Job{ID: "j1", Status: entities.JobStatusDiagnosing}, nil)

		if _, err := uc.UpdateStatus(context.Background(), "j1", entities.JobStatusReady); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		job, err := uc.UpdateStatus(context.Background(), "j1", entities.JobStatusDiagnosing)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Status != entities.JobStatusDiagnosing {
			t.Fatalf("expected DIAGNOSING, got %s", job.Status)
		}
	})
}

func TestJobUseCase_AddCostItem(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil)
		if _, err := uc.AddCostItem(context.Background(), "", "Labor", 100); !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
		if _, err := uc.AddCostItem(context.Background(), "j1", "  ", 100); !errors.Is(err, ErrEmptyCostDescription) {
			t.Fatalf("expected ErrEmptyCostDescription, got %v", err)
		}
		if _, err := uc.AddCostItem(context.Background(), "j1", "Labor", -1); !errors.Is(err, ErrInvalidCostAmount) {
			t.Fatalf("expected ErrInvalidCostAmount, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		repo.EXPECT().AppendCostItem(gomock.Any(), "missing", gomock.Any()).Return(entities.Job{}, nil)

		if _, err := uc.AddCostItem(context.Background(), "missing", "Labor", 100); !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("append success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		repo.EXPECT().AppendCostItem(gomock.Any(), "j1", gomock.AssignableToTypeOf(entities.CostItem{})).DoAndReturn(
			func(_ context.Context, id string, item entities.CostItem) (entities.Job, error) {
				if item.ID == "" || item.Description != "KYB Front Shocks" || item.Amount != 350000 {
					t.Fatalf("unexpected cost item: %+v", item)
				}
				return entities.Job{ID: id, CostItems: []entities.CostItem{item}}, nil
			},
		)

		job, err := uc.AddCostItem(context.Background(), "j1", " KYB Front Shocks ", 350000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.TotalCost() != 350000 {
			t.Fatalf("unexpected total: %d", job.TotalCost())
		}
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		repo.EXPECT().AppendCostItem(gomock.Any(), "j1", gomock.Any()).Return(entities.Job{ID: "j1"}, nil)

		if _, err := uc.AddCostItem(context.Background(), "j1", "Goodwill discount check", 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestJobUseCase_AddLogEntry(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil)
		if _, err := uc.AddLogEntry(context.Background(), " ", "note"); !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
		if _, err := uc.AddLogEntry(context.Background(), "j1", "  "); !errors.Is(err, ErrEmptyLogMessage) {
			t.Fatalf("expected ErrEmptyLogMessage, got %v", err)
		}
	})

	t.Run("prepend success keeps newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		existing := entities.LogEntry{ID: "l1", Timestamp: "09:30", Message: "Job card opened."}
		repo.EXPECT().PrependLogEntry(gomock.Any(), "j1", gomock.AssignableToTypeOf(entities.LogEntry{})).DoAndReturn(
			func(_ context.Context, id string, entry entities.LogEntry) (entities.Job, error) {
				if entry.ID == "" || entry.Timestamp == "" {
					t.Fatalf("expected generated id and timestamp: %+v", entry)
				}
				return entities.Job{ID: id, Logs: []entities.LogEntry{entry, existing}}, nil
			},
		)

		job, err := uc.AddLogEntry(context.Background(), "j1", "Shocks replaced.")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Logs[0].Message != "Shocks replaced." {
			t.Fatalf("expected newest-first logs, got %+v", job.Logs)
		}
	})
}

func TestJobUseCase_GetAndList(t *testing.T) {
	t.Run("get invalid id", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil)
		if _, err := uc.GetJob(context.Background(), ""); !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Job{}, nil)

		if _, err := uc.GetJob(context.Background(), "missing"); !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("list sorted newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Job{
			{ID: "old", EntryDate: mustTime(t, "2024-03-01T08:00:00Z")},
			{ID: "new", EntryDate: mustTime(t, "2024-03-01T10:00:00Z")},
		}, nil)

		jobs, err := uc.ListJobs(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(jobs) != 2 || jobs[0].ID != "new" {
			t.Fatalf("unexpected order: %+v", jobs)
		}
	})
}
