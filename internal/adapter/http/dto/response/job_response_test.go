package response

import (
	"testing"
	"time"

	"mototrackr/internal/domain/entities"
)

func TestFromJob(t *testing.T) {
	now := time.Now().UTC()
	job := entities.Job{
		ID:            "j1",
		CustomerName:  "Okello James",
		CustomerPhone: "0772 123 456",
		VehicleModel:  "Bajaj Boxer",
		PlateNumber:   "UBG 123X",
		IssueType:     "Engine",
		Status:        entities.JobStatusRepairing,
		EntryDate:     now,
		CostItems: []entities.CostItem{
			{ID: "c1", Description: "Brake pads", Amount: 15000},
			{ID: "c2", Description: "Labour", Amount: 8000},
		},
		Logs: []entities.LogEntry{
			{ID: "l2", Timestamp: "14:30", Message: "Replaced pads."},
			{ID: "l1", Timestamp: "09:05", Message: "Job card opened."},
		},
	}

	got := FromJob(job)
	if got.TotalCost != 23000 {
		t.Fatalf("expected total 23000, got %d", got.TotalCost)
	}
	if got.Status != "REPAIRING" || got.StatusLabel != "REPAIRING" {
		t.Fatalf("unexpected status fields: %q %q", got.Status, got.StatusLabel)
	}
	if len(got.Logs) != 2 || got.Logs[0].Message != "Replaced pads." {
		t.Fatalf("expected newest-first log order preserved, got %+v", got.Logs)
	}
	if got.CustomerPhone != "0772 123 456" {
		t.Fatalf("stored phone must pass through untouched, got %q", got.CustomerPhone)
	}
	if got.Visuals == nil {
		t.Fatalf("visuals must serialize as an empty list, not null")
	}
}

func TestTrackResponseViews(t *testing.T) {
	job := entities.Job{ID: "j1", Status: entities.JobStatusReady}

	status := StatusView(job)
	if status.View != TrackViewStatus || status.Job == nil || status.Job.ID != "j1" {
		t.Fatalf("unexpected status view: %+v", status)
	}
	if status.Customer != nil || status.Jobs != nil {
		t.Fatalf("status view must not carry history fields")
	}

	customer := entities.Customer{Name: "Okello James", Phone: "0772123456", JobIDs: []string{"j1", "j2"}}
	history := HistoryView(customer, []entities.Job{job, {ID: "j2"}})
	if history.View != TrackViewHistory || history.Customer == nil || len(history.Jobs) != 2 {
		t.Fatalf("unexpected history view: %+v", history)
	}
	if history.Customer.Name != "Okello James" || len(history.Customer.JobIDs) != 2 {
		t.Fatalf("unexpected customer payload: %+v", history.Customer)
	}
}
