package requests

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/byiringiro-albert/portfolio/internal/models"
)

// Notification is an email-shaped message drafted for an accepted request.
type Notification struct {
	To      string
	Subject string
	Text    string
}

// Notifier delivers drafted notifications.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// LogNotifier only logs the drafts. No mail leaves the process.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, n Notification) error {
	slog.DebugContext(ctx, "Notification drafted", "to", n.To, "subject", n.Subject, "bytes", len(n.Text))
	return nil
}

// AdminNotification drafts the message telling the site owner about a new request.
func AdminNotification(adminEmail, dashboardURL string, rec models.AuditRecord) Notification {
	var b strings.Builder
	b.WriteString("New download request received:\n\n")
	fmt.Fprintf(&b, "Request ID: %s\n", rec.RequestID)
	fmt.Fprintf(&b, "Publication: %s\n", rec.PublicationID)
	fmt.Fprintf(&b, "Name: %s\n", rec.Name)
	fmt.Fprintf(&b, "Email: %s\n", rec.Email)
	fmt.Fprintf(&b, "Institution: %s\n", rec.Institution)
	fmt.Fprintf(&b, "Purpose: %s\n", rec.Purpose)
	fmt.Fprintf(&b, "Timestamp: %s\n\n", rec.Timestamp.UTC().Format(time.RFC3339Nano))
	fmt.Fprintf(&b, "Review and approve at: %s\n", dashboardURL)

	return Notification{
		To:      adminEmail,
		Subject: "New Download Request: " + rec.PublicationID,
		Text:    b.String(),
	}
}

// UserConfirmation drafts the acknowledgment sent back to the requester.
func UserConfirmation(rec models.AuditRecord) Notification {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", rec.Name)
	fmt.Fprintf(&b, "Your request to download %q has been received.\n\n", rec.PublicationID)
	fmt.Fprintf(&b, "Request ID: %s\n", rec.RequestID)
	b.WriteString("Status: Pending Review\n\n")
	b.WriteString("Our team will review your request and contact you within 3-5 business days.\n")
	b.WriteString("Approved requests will receive a time-limited download link via email.\n\n")
	b.WriteString("Please note: All downloads are tracked and subject to our terms of use.\n")

	return Notification{
		To:      rec.Email,
		Subject: "Download Request Received",
		Text:    b.String(),
	}
}
