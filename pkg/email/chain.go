package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

type Status string

const (
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Report is the outcome of one Deliver call.
type Report struct {
	Provider string
	Status   Status
	Err      error
}

// Provider is one delivery backend. Enabled reports whether it is configured;
// it says nothing about whether the backend is healthy.
type Provider struct {
	Name    string
	Enabled func() bool
	Sender  Sender
}

// Chain holds providers in priority order. Only the first enabled provider is
// ever used for a message; the others are alternatives, not fallbacks after a
// failed attempt.
type Chain struct {
	providers []Provider
	timeout   time.Duration
	log       *slog.Logger
}

// NewChain builds a chain. A zero timeout leaves the outbound call unbounded.
func NewChain(log *slog.Logger, timeout time.Duration, providers ...Provider) *Chain {
	return &Chain{
		providers: providers,
		timeout:   timeout,
		log:       log,
	}
}

// Selected returns the provider Deliver would use.
func (c *Chain) Selected() (Provider, bool) {
	for _, p := range c.providers {
		if p.Enabled != nil && p.Enabled() {
			return p, true
		}
	}
	return Provider{}, false
}

// Deliver sends msg through the selected provider. Errors and panics from the
// provider are logged and reported, never returned. The attempt is detached
// from ctx cancellation so an accepted enquiry is always relayed.
func (c *Chain) Deliver(ctx context.Context, msg Message) (report Report) {
	p, ok := c.Selected()
	if !ok {
		c.log.Info("No delivery provider configured, enquiry kept in logs only", "subject", msg.Subject)
		return Report{Status: StatusSkipped}
	}
	report.Provider = p.Name

	ctx = context.WithoutCancel(ctx)
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			report.Status = StatusFailed
			report.Err = fmt.Errorf("%s: panic: %v", p.Name, r)
			c.log.Error("Enquiry delivery panicked", "provider", p.Name, "subject", msg.Subject, "error", report.Err)
		}
	}()

	start := time.Now()
	if err := p.Sender.Send(ctx, msg); err != nil {
		c.log.Error("Enquiry delivery failed", "provider", p.Name, "subject", msg.Subject, "duration", time.Since(start), "error", err)
		report.Status = StatusFailed
		report.Err = err
		return report
	}

	c.log.Info("Enquiry notification sent", "provider", p.Name, "to", msg.To, "duration", time.Since(start))
	report.Status = StatusSent
	return report
}

// Settings carries the credentials for every known provider.
type Settings struct {
	ResendAPIKey string

	WebhookURL   string
	WebhookToken string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string

	HTTPClient *http.Client
}

// DefaultProviders returns Resend, the HTTP gateway and SMTP in that priority.
func DefaultProviders(s Settings) []Provider {
	return []Provider{
		{
			Name:    "resend",
			Enabled: func() bool { return s.ResendAPIKey != "" },
			Sender:  NewResendSender(s.ResendAPIKey),
		},
		{
			Name:    "webhook",
			Enabled: func() bool { return s.WebhookURL != "" && s.WebhookToken != "" },
			Sender:  NewWebhookSender(s.WebhookURL, s.WebhookToken, s.HTTPClient),
		},
		{
			Name:    "smtp",
			Enabled: func() bool { return s.SMTPHost != "" && s.SMTPUsername != "" && s.SMTPPassword != "" },
			Sender:  NewSMTPSender(s.SMTPHost, s.SMTPPort, s.SMTPUsername, s.SMTPPassword),
		},
	}
}
