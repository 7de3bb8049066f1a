package validation

import (
	"net/mail"
	"strings"

	"delstarford/internal/models"
)

// ValidateEmail checks that an address parses as a single RFC 5322 address.
func ValidateEmail(addr string) bool {
	if addr == "" || len(addr) > 254 {
		return false
	}
	parsed, err := mail.ParseAddress(addr)
	return err == nil && parsed.Address == addr
}

// ValidateLeadSubmission enforces the canonical lead validation policy:
// name, email, and service are required and the email must be well-formed.
// It returns a user-facing message for the first violation found, or ""
// when the submission is acceptable.
func ValidateLeadSubmission(sub models.LeadSubmission) string {
	if strings.TrimSpace(sub.Name) == "" {
		return "Name is required"
	}
	if strings.TrimSpace(sub.Email) == "" {
		return "Email is required"
	}
	if !ValidateEmail(strings.TrimSpace(sub.Email)) {
		return "Email address is not valid"
	}
	if strings.TrimSpace(sub.Service) == "" {
		return "Service is required"
	}
	return ""
}

// NormalizeLeadSubmission trims surrounding whitespace from every field.
func NormalizeLeadSubmission(sub models.LeadSubmission) models.LeadSubmission {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Service = strings.TrimSpace(sub.Service)
	sub.Budget = strings.TrimSpace(sub.Budget)
	sub.Timeline = strings.TrimSpace(sub.Timeline)
	sub.Details = strings.TrimSpace(sub.Details)
	return sub
}
