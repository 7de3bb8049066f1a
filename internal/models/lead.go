package models

import "time"

// LeadSubmission is the normalized form of an inbound custom-solution
// request. Both form-encoded and JSON bodies decode into this one shape
// before the workflow sees them.
type LeadSubmission struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Service  string `json:"service" form:"service"`
	Budget   string `json:"budget" form:"budget"`
	Timeline string `json:"timeline" form:"timeline"`
	Details  string `json:"details" form:"details"`
}

// LeadRecord is the append-only record persisted to the record store as a
// durability backstop. It is written once at submission time and never
// updated or deleted by this service.
type LeadRecord struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Service     string    `json:"service"`
	Budget      string    `json:"budget,omitempty"`
	Timeline    string    `json:"timeline,omitempty"`
	Details     string    `json:"details"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// NewLeadRecord builds the record for a submission, stamping it with the
// wall-clock time at receipt.
func NewLeadRecord(sub LeadSubmission, now time.Time) LeadRecord {
	return LeadRecord{
		Name:        sub.Name,
		Email:       sub.Email,
		Service:     sub.Service,
		Budget:      sub.Budget,
		Timeline:    sub.Timeline,
		Details:     sub.Details,
		SubmittedAt: now,
	}
}
