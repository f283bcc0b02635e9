package request

import "strings"

// CreateJobRequest is the check-in payload. Older clients send the model
// under motorcycle_model; both keys are accepted and vehicle_model wins.
type CreateJobRequest struct {
	CustomerName     string   `json:"customer_name" binding:"required"`
	CustomerPhone    string   `json:"customer_phone" binding:"required"`
	VehicleModel     string   `json:"vehicle_model"`
	MotorcycleModel  string   `json:"motorcycle_model"`
	PlateNumber      string   `json:"plate_number"`
	IssueType        string   `json:"issue_type" binding:"required"`
	IssueDescription string   `json:"issue_description"`
	Visuals          []string `json:"visuals"`
}

func (r CreateJobRequest) ResolveModel() string {
	if v := strings.TrimSpace(r.VehicleModel); v != "" {
		return v
	}
	return strings.TrimSpace(r.MotorcycleModel)
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AddCostItemRequest carries one billable line. Amount is whole shillings;
// zero is a valid amount so it carries no required binding.
type AddCostItemRequest struct {
	Description string `json:"description" binding:"required"`
	Amount      int64  `json:"amount"`
}

type AddLogEntryRequest struct {
	Message string `json:"message" binding:"required"`
}
