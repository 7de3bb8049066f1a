// Package leads implements the lead intake workflow: notify the operator,
// acknowledge the requester, and keep a backup record of the submission.
package leads

import (
	"context"
	"fmt"
	"time"

	"delstarford/internal/email"
	"delstarford/internal/logger"
	"delstarford/internal/metrics"
	"delstarford/internal/models"
)

// RecordPath is where lead records are pushed in the record store.
const RecordPath = "leads/service_requests"

// FailureMessage is the only text shown to a caller when the operator
// notification cannot be sent. Transport detail stays in the server log.
const FailureMessage = "Server email configuration failed. Please try again later."

// SuccessMessage confirms a submission to the caller.
const SuccessMessage = "Request sent! Check your email for confirmation."

// Sender delivers one notification message.
type Sender interface {
	Send(msg email.Message) error
}

// RecordStore is the subset of the record store the workflow needs.
type RecordStore interface {
	Push(ctx context.Context, path string, v any) (string, error)
}

// Outcome is the structured result of one submission.
type Outcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Service orchestrates lead intake. One call per inbound submission, no
// retries, no idempotency: duplicate submissions are independent leads.
type Service struct {
	sender    Sender
	store     RecordStore
	templates *email.Templates
	now       func() time.Time
}

// NewService creates the workflow with its collaborators injected.
func NewService(sender Sender, store RecordStore, templates *email.Templates) *Service {
	return &Service{
		sender:    sender,
		store:     store,
		templates: templates,
		now:       time.Now,
	}
}

// Submit runs the intake workflow for one submission.
//
// The operator notification is the business-critical side effect and gates
// everything else: if it fails, the requester acknowledgment is never
// attempted and the outcome is a failure. Once it succeeds the outcome is
// success; the acknowledgment is sent fire-and-forget and the record store
// write is best-effort, with both outcomes logged only.
func (s *Service) Submit(ctx context.Context, sub models.LeadSubmission) (out Outcome) {
	log := logger.Global()

	// The workflow must never surface a fault to the caller.
	defer func() {
		if r := recover(); r != nil {
			log.Error().Any("panic", r).Msg("lead workflow fault")
			metrics.RecordLead("fault")
			out = Outcome{Success: false, Message: fmt.Sprintf("Unexpected error: %v", r)}
		}
	}()

	log.Info().
		Str("email", sub.Email).
		Str("service", sub.Service).
		Msg("new lead received")

	if err := s.sender.Send(s.templates.OperatorNotification(sub)); err != nil {
		log.Error().Err(err).Msg("operator notification failed")
		metrics.RecordEmail("operator", "error")
		metrics.RecordLead("error")
		return Outcome{Success: false, Message: FailureMessage}
	}
	metrics.RecordEmail("operator", "ok")

	// The confirmation is a nicety; its result is logged, never awaited.
	ack := s.templates.RequesterAcknowledgment(sub)
	go func() {
		if err := s.sender.Send(ack); err != nil {
			log.Warn().Err(err).Str("to", ack.To).Msg("requester acknowledgment failed")
			metrics.RecordEmail("requester", "error")
			return
		}
		metrics.RecordEmail("requester", "ok")
	}()

	record := models.NewLeadRecord(sub, s.now())
	if key, err := s.store.Push(ctx, RecordPath, record); err != nil {
		log.Warn().Err(err).Msg("lead record backup failed")
	} else {
		log.Info().Str("key", key).Msg("lead record stored")
	}

	metrics.RecordLead("ok")
	return Outcome{Success: true, Message: SuccessMessage}
}
