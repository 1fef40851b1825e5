package notify

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// EmailSender delivers notifications through the Resend transactional
// email API.
type EmailSender struct {
	client *resend.Client
	from   string
	to     string
}

// NewEmailSender creates an EmailSender for the given API key and addresses.
func NewEmailSender(apiKey, from, to string) *EmailSender {
	return &EmailSender{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
	}
}

// Send delivers one notification email.
func (s *EmailSender) Send(ctx context.Context, msg Message) error {
	_, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.to},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
