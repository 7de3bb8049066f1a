package email

import (
	"fmt"
	"strings"

	"delstarford/internal/config"
	"delstarford/internal/models"
)

// Templates builds the notification messages for a lead submission.
type Templates struct {
	cfg *config.Config
}

// NewTemplates creates a new templates instance.
func NewTemplates(cfg *config.Config) *Templates {
	return &Templates{cfg: cfg}
}

// OperatorNotification is the message sent to the operator inbox when a new
// lead arrives. The subject names the service and the requester so leads are
// scannable from the inbox list.
func (t *Templates) OperatorNotification(sub models.LeadSubmission) Message {
	var b strings.Builder
	b.WriteString("New lead received.\n\n")
	b.WriteString(fmt.Sprintf("Name: %s\n", sub.Name))
	b.WriteString(fmt.Sprintf("Email: %s\n", sub.Email))
	b.WriteString(fmt.Sprintf("Service requested: %s\n", sub.Service))
	if sub.Budget != "" {
		b.WriteString(fmt.Sprintf("Budget: %s\n", sub.Budget))
	}
	if sub.Timeline != "" {
		b.WriteString(fmt.Sprintf("Timeline: %s\n", sub.Timeline))
	}
	b.WriteString(fmt.Sprintf("\nProject details:\n%s\n", sub.Details))
	b.WriteString("\nThe full record is in the lead store under leads/service_requests.\n")

	return Message{
		To:      t.cfg.OperatorEmail,
		Subject: fmt.Sprintf("New Client Request: %s - %s", sub.Service, sub.Name),
		Body:    b.String(),
	}
}

// RequesterAcknowledgment is the thank-you confirmation sent back to the
// person who submitted the form.
func (t *Templates) RequesterAcknowledgment(sub models.LeadSubmission) Message {
	body := fmt.Sprintf(`Hello %s,

Thank you for contacting %s.

We have received your request for: %s.
Our team of engineers is reviewing your requirements and will contact you
shortly with a project roadmap and quote.

Best Regards,
%s
`, sub.Name, t.cfg.SiteTitle, sub.Service, t.cfg.SiteTitle)

	return Message{
		To:      sub.Email,
		Subject: fmt.Sprintf("Request Received - %s", t.cfg.SiteTitle),
		Body:    body,
	}
}
