package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// resendEmails is the part of the Resend client used here.
type resendEmails interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendSender sends emails using the Resend API.
type ResendSender struct {
	emails resendEmails
}

// NewResendSender creates a new Resend email sender.
func NewResendSender(apiKey string) *ResendSender {
	return &ResendSender{
		emails: resend.NewClient(apiKey).Emails,
	}
}

// Send sends an email using the Resend API.
func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		ReplyTo: msg.ReplyTo,
	}

	if _, err := s.emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}

	return nil
}
