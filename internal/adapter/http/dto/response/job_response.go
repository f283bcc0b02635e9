package response

import (
	"time"

	"mototrackr/internal/domain/entities"
)

type CostItemResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

type LogEntryResponse struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

type JobResponse struct {
	ID               string             `json:"id"`
	CustomerName     string             `json:"customer_name"`
	CustomerPhone    string             `json:"customer_phone"`
	VehicleModel     string             `json:"vehicle_model"`
	PlateNumber      string             `json:"plate_number"`
	IssueType        string             `json:"issue_type"`
	IssueDescription string             `json:"issue_description"`
	Status           string             `json:"status"`
	StatusLabel      string             `json:"status_label"`
	EntryDate        time.Time          `json:"entry_date"`
	CostItems        []CostItemResponse `json:"cost_items"`
	TotalCost        int64              `json:"total_cost"`
	Logs             []LogEntryResponse `json:"logs"`
	Visuals          []string           `json:"visuals"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	costs := make([]CostItemResponse, 0, len(j.CostItems))
	for _, item := range j.CostItems {
		costs = append(costs, CostItemResponse{ID: item.ID, Description: item.Description, Amount: item.Amount})
	}
	logs := make([]LogEntryResponse, 0, len(j.Logs))
	for _, entry := range j.Logs {
		logs = append(logs, LogEntryResponse{ID: entry.ID, Timestamp: entry.Timestamp, Message: entry.Message})
	}
	visuals := j.Visuals
	if visuals == nil {
		visuals = []string{}
	}
	return JobResponse{
		ID:               j.ID,
		CustomerName:     j.CustomerName,
		CustomerPhone:    j.CustomerPhone,
		VehicleModel:     j.VehicleModel,
		PlateNumber:      j.PlateNumber,
		IssueType:        j.IssueType,
		IssueDescription: j.IssueDescription,
		Status:           string(j.Status),
		StatusLabel:      j.Status.Label(),
		EntryDate:        j.EntryDate,
		CostItems:        costs,
		TotalCost:        j.TotalCost(),
		Logs:             logs,
		Visuals:          visuals,
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}
