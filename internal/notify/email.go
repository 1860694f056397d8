package notify

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"mentordash/internal/logger"
)

// EmailNotifier delivers pod notifications over email via Resend.
type EmailNotifier struct {
	client    *resend.Client
	fromEmail string
}

// NewEmailNotifier creates a Resend-backed notifier.
func NewEmailNotifier(apiKey, fromEmail string) *EmailNotifier {
	return &EmailNotifier{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
	}
}

// Send delivers the notification as a plain-text email.
func (n *EmailNotifier) Send(ctx context.Context, msg Notification) error {
	params := &resend.SendEmailRequest{
		From:    n.fromEmail,
		To:      []string{msg.Recipient},
		Subject: msg.Subject,
		Text:    msg.Body,
	}

	if _, err := n.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("send %s email to %s: %w", msg.Kind, msg.Recipient, err)
	}

	logger.Get().Infow("notification sent",
		"kind", msg.Kind,
		"recipient", msg.Recipient,
	)
	return nil
}
