package response

import "mototrackr/internal/domain/entities"

const (
	TrackViewStatus  = "status"
	TrackViewHistory = "history"
)

type CustomerResponse struct {
	Name   string   `json:"name"`
	Phone  string   `json:"phone"`
	JobIDs []string `json:"job_ids"`
}

// TrackResponse is the customer-facing lookup payload. View tells the client
// which screen to render: a single active job card or the repair history.
type TrackResponse struct {
	View     string            `json:"view"`
	Job      *JobResponse      `json:"job,omitempty"`
	Customer *CustomerResponse `json:"customer,omitempty"`
	Jobs     []JobResponse     `json:"jobs,omitempty"`
}

func StatusView(j entities.Job) TrackResponse {
	job := FromJob(j)
	return TrackResponse{View: TrackViewStatus, Job: &job}
}

func HistoryView(c entities.Customer, jobs []entities.Job) TrackResponse {
	customer := CustomerResponse{Name: c.Name, Phone: c.Phone, JobIDs: c.JobIDs}
	if customer.JobIDs == nil {
		customer.JobIDs = []string{}
	}
	return TrackResponse{View: TrackViewHistory, Customer: &customer, Jobs: FromJobs(jobs)}
}
