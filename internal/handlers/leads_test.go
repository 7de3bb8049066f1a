package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v3"

	"delstarford/internal/config"
	"delstarford/internal/email"
	"delstarford/internal/leads"
)

type stubSender struct {
	mu   sync.Mutex
	sent []email.Message
	err  error
}

func (s *stubSender) Send(msg email.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return s.err
}

type stubStore struct{}

func (stubStore) Push(context.Context, string, any) (string, error) { return "key", nil }

func newLeadApp(sender leads.Sender) *fiber.App {
	cfg := &config.Config{
		SiteTitle:     "Delstarford Works",
		OperatorEmail: "ops@example.com",
	}
	service := leads.NewService(sender, stubStore{}, email.NewTemplates(cfg))

	app := fiber.New()
	app.Post("/custom", NewLeadHandler(cfg, service).Submit)
	return app
}

func postLead(t *testing.T, app *fiber.App, contentType, body string) (int, leads.Outcome) {
	t.Helper()

	req, _ := http.NewRequest("POST", "/custom", strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var outcome leads.Outcome
	if err := json.Unmarshal(raw, &outcome); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, raw)
	}
	return resp.StatusCode, outcome
}

func TestSubmitLeadJSON(t *testing.T) {
	sender := &stubSender{}
	app := newLeadApp(sender)

	status, outcome := postLead(t, app, fiber.MIMEApplicationJSON,
		`{"name": "Jane", "email": "jane@example.com", "service": "Chatbot", "details": "Support bot."}`)

	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !outcome.Success {
		t.Errorf("success = false, want true: %s", outcome.Message)
	}
}

func TestSubmitLeadForm(t *testing.T) {
	sender := &stubSender{}
	app := newLeadApp(sender)

	form := url.Values{
		"name":     {"Jane"},
		"email":    {"jane@example.com"},
		"service":  {"Chatbot"},
		"budget":   {"KSh 50,000"},
		"timeline": {"1 month"},
		"details":  {"Support bot."},
	}
	status, outcome := postLead(t, app, fiber.MIMEApplicationForm, form.Encode())

	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !outcome.Success {
		t.Errorf("success = false, want true: %s", outcome.Message)
	}

	// Both wire formats normalize into the same submission shape.
	sender.mu.Lock()
	defer sender.mu.Unlock()
	if len(sender.sent) == 0 {
		t.Fatal("operator notification was not sent")
	}
	if !strings.Contains(sender.sent[0].Body, "KSh 50,000") {
		t.Error("form fields should reach the operator notification")
	}
}

func TestSubmitLeadValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email": "jane@example.com", "service": "Chatbot"}`},
		{"missing email", `{"name": "Jane", "service": "Chatbot"}`},
		{"malformed email", `{"name": "Jane", "email": "nope", "service": "Chatbot"}`},
		{"missing service", `{"name": "Jane", "email": "jane@example.com"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &stubSender{}
			app := newLeadApp(sender)

			status, outcome := postLead(t, app, fiber.MIMEApplicationJSON, tt.body)
			if status != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", status)
			}
			if outcome.Success {
				t.Error("success = true, want false")
			}

			// A rejected submission must trigger no side effects.
			sender.mu.Lock()
			if len(sender.sent) != 0 {
				t.Errorf("sends = %d, want 0", len(sender.sent))
			}
			sender.mu.Unlock()
		})
	}
}

func TestSubmitLeadOperatorFailure(t *testing.T) {
	sender := &stubSender{err: errors.New("smtp: connection refused")}
	app := newLeadApp(sender)

	status, outcome := postLead(t, app, fiber.MIMEApplicationJSON,
		`{"name": "Jane", "email": "jane@example.com", "service": "Chatbot"}`)

	if status != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}
	if outcome.Success {
		t.Error("success = true, want false")
	}
	if outcome.Message != leads.FailureMessage {
		t.Errorf("message = %q, transport detail must never leak", outcome.Message)
	}
}
