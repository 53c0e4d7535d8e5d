// Package email relays enquiry notifications through one of several
// interchangeable providers.
package email

import "context"

// Message is a fully addressed HTML email.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Sender is the interface for email providers.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SenderFunc adapts a plain function to Sender.
type SenderFunc func(ctx context.Context, msg Message) error

func (f SenderFunc) Send(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}
