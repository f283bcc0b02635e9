package entities

import (
	"strings"
	"time"
	"unicode"
)

// JobStatus represents the repair stage of a job card.
//
// Domain notes:
//   - Status is operator-asserted, not system-inferred: any status may move
//     to any other status, including back from READY (mechanic corrections).
//   - The order below is a display order only, not a legality order.
//
//go:generate stringer -type=JobStatus

type JobStatus string

const (
	JobStatusCheckedIn    JobStatus = "CHECKED_IN"
	JobStatusDiagnosing   JobStatus = "DIAGNOSING"
	JobStatusRepairing    JobStatus = "REPAIRING"
	JobStatusWaitingParts JobStatus = "WAITING_PARTS"
	JobStatusReady        JobStatus = "READY"
)

// AllJobStatuses lists the statuses in display order.
var AllJobStatuses = []JobStatus{
	JobStatusCheckedIn,
	JobStatusDiagnosing,
	JobStatusRepairing,
	JobStatusWaitingParts,
	JobStatusReady,
}

// IsValid reports whether s is one of the five known statuses.
func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusCheckedIn, JobStatusDiagnosing, JobStatusRepairing, JobStatusWaitingParts, JobStatusReady:
		return true
	}
	return false
}

// Label is the customer-facing wording for a status.
func (s JobStatus) Label() string {
	switch s {
	case JobStatusCheckedIn:
		return "CHECKED IN"
	case JobStatusDiagnosing:
		return "DIAGNOSING"
	case JobStatusRepairing:
		return "REPAIRING"
	case JobStatusWaitingParts:
		return "WAITING FOR PARTS"
	case JobStatusReady:
		return "READY FOR PICKUP"
	}
	return string(s)
}

// CostItem is one billable line attached to a job.
//
// Amounts are whole shillings (smallest currency unit, no fractional
// subunit). Cost items are append-only: there is no edit or delete path.

type CostItem struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

// LogEntry is one timestamped progress note attached to a job.
//
// Timestamp is the wall-clock hour:minute the note was written, as shown to
// the customer. Log entries are append-only and kept newest-first.

type LogEntry struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

// Job is one repair engagement (job card) persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (plate_key-index): normalized plate number
//   - GSI2 (phone_key-index): normalized customer phone
//
// CostItems and Logs are embedded lists owned exclusively by the job.
// Logs are ordered newest-first: Logs[0] is always the latest entry.

type Job struct {
	ID               string     `json:"id"`
	CustomerName     string     `json:"customer_name"`
	CustomerPhone    string     `json:"customer_phone"`
	VehicleModel     string     `json:"vehicle_model"`
	PlateNumber      string     `json:"plate_number"`
	IssueType        string     `json:"issue_type"`
	IssueDescription string     `json:"issue_description"`
	Status           JobStatus  `json:"status"`
	EntryDate        time.Time  `json:"entry_date"`
	CostItems        []CostItem `json:"cost_items"`
	Logs             []LogEntry `json:"logs"`
	Visuals          []string   `json:"visuals"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// VehicleDescriptor is the "model (plate)" string used in customer-facing
// messages.
func (j Job) VehicleDescriptor() string {
	model := strings.TrimSpace(j.VehicleModel)
	plate := strings.TrimSpace(j.PlateNumber)
	switch {
	case model == "":
		return plate
	case plate == "":
		return model
	}
	return model + " (" + plate + ")"
}

// TotalCost is the arithmetic sum of all cost item amounts. Integer
// currency, order-independent, no rounding.
func (j Job) TotalCost() int64 {
	var total int64
	for _, item := range j.CostItems {
		total += item.Amount
	}
	return total
}

// PlateKey normalizes a plate number into its match key: uppercase with all
// whitespace removed. The stored plate is never rewritten by lookups.
func PlateKey(plate string) string {
	return strings.ToUpper(stripSpaces(plate))
}

// PhoneKey normalizes a phone number into its match key by stripping all
// whitespace. No country-code rewriting happens here; that is a
// dispatch-time concern and must not leak into stored or matched values.
func PhoneKey(phone string) string {
	return stripSpaces(phone)
}

func stripSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
