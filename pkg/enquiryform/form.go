// Package enquiryform drives the website's enquiry form: it holds the field
// values, submits them once per Submit call and exposes the resulting state.
package enquiryform

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"mfroosh-trade-backend/internal/domain"
)

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

// DefaultResetAfter is how long the success banner stays up.
const DefaultResetAfter = 5 * time.Second

var (
	ErrSubmitInProgress = errors.New("enquiry submission already in progress")
	ErrClosed           = errors.New("enquiry form closed")
)

// Values are the editable form fields.
type Values struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Product string
	Message string
}

func (v Values) request() domain.EnquiryRequest {
	return domain.EnquiryRequest{
		Name:    v.Name,
		Email:   v.Email,
		Phone:   v.Phone,
		Company: v.Company,
		Product: v.Product,
		Message: v.Message,
	}
}

// Snapshot is a consistent copy of the form at one instant.
type Snapshot struct {
	State        State
	ErrorMessage string
	Values       Values
}

// Submitter sends one enquiry. *Client is the production implementation.
type Submitter interface {
	Send(ctx context.Context, req domain.EnquiryRequest) (*Result, error)
}

type Options struct {
	// DefaultProduct pre-selects a product and survives the post-success reset.
	DefaultProduct string
	// OnSuccess runs after a successful submission, e.g. to close an overlay.
	OnSuccess func()
	// OnChange receives every state transition.
	OnChange func(Snapshot)
	// ResetAfter overrides DefaultResetAfter.
	ResetAfter time.Duration
	Localizer  *Localizer
}

// Form is safe for concurrent use. It owns at most one auto-reset timer,
// which is cancelled when a new submission starts or the form is closed.
type Form struct {
	client Submitter
	opts   Options

	mu           sync.Mutex
	state        State
	errorMessage string
	values       Values
	resetTimer   *time.Timer
	generation   uint64
	closed       bool
}

func New(client Submitter, opts Options) *Form {
	if opts.ResetAfter <= 0 {
		opts.ResetAfter = DefaultResetAfter
	}
	if opts.Localizer == nil {
		opts.Localizer = NewLocalizer()
	}
	return &Form{
		client: client,
		opts:   opts,
		state:  StateIdle,
		values: Values{Product: opts.DefaultProduct},
	}
}

// Set updates one field by its form name (name, email, phone, company,
// product, message).
func (f *Form) Set(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case "name":
		f.values.Name = value
	case "email":
		f.values.Email = value
	case "phone":
		f.values.Phone = value
	case "company":
		f.values.Company = value
	case "product":
		f.values.Product = value
	case "message":
		f.values.Message = value
	default:
		return fmt.Errorf("unknown enquiry field %q", field)
	}
	return nil
}

// SetValues replaces every field at once.
func (f *Form) SetValues(v Values) {
	f.mu.Lock()
	f.values = v
	f.mu.Unlock()
}

func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *Form) snapshotLocked() Snapshot {
	return Snapshot{State: f.state, ErrorMessage: f.errorMessage, Values: f.values}
}

// Submit sends the current values and blocks until the form reaches success
// or error. The outcome is reported through the form state; the returned
// error is only ErrSubmitInProgress or ErrClosed.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrClosed
	}
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}
	f.stopResetLocked()
	f.generation++
	gen := f.generation
	f.state = StateSubmitting
	f.errorMessage = ""
	req := f.values.request()
	snap := f.snapshotLocked()
	f.mu.Unlock()
	f.notify(snap)

	result, err := f.client.Send(ctx, req)

	f.mu.Lock()
	if f.closed || gen != f.generation {
		f.mu.Unlock()
		return nil
	}

	if err != nil || result == nil || !result.OK() {
		f.state = StateError
		f.errorMessage = f.failureMessage(result, err)
		snap = f.snapshotLocked()
		f.mu.Unlock()
		f.notify(snap)
		return nil
	}

	f.state = StateSuccess
	f.values = Values{Product: f.opts.DefaultProduct}
	f.resetTimer = time.AfterFunc(f.opts.ResetAfter, func() { f.autoReset(gen) })
	snap = f.snapshotLocked()
	f.mu.Unlock()

	if f.opts.OnSuccess != nil {
		f.opts.OnSuccess()
	}
	f.notify(snap)
	return nil
}

// failureMessage prefers the server's own message and falls back to the
// localized default. Raw transport errors are never shown.
func (f *Form) failureMessage(result *Result, err error) string {
	if err == nil && result != nil && result.Response.Message != "" {
		return result.Response.Message
	}
	return f.opts.Localizer.T(KeyErrorDefault)
}

func (f *Form) autoReset(gen uint64) {
	f.mu.Lock()
	if f.closed || gen != f.generation || f.state != StateSuccess {
		f.mu.Unlock()
		return
	}
	f.state = StateIdle
	f.resetTimer = nil
	snap := f.snapshotLocked()
	f.mu.Unlock()
	f.notify(snap)
}

func (f *Form) stopResetLocked() {
	if f.resetTimer != nil {
		f.resetTimer.Stop()
		f.resetTimer = nil
	}
}

// Close cancels any pending auto-reset. An in-flight submission still
// completes on the wire but no longer changes the form.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.stopResetLocked()
}

func (f *Form) notify(s Snapshot) {
	if f.opts.OnChange != nil {
		f.opts.OnChange(s)
	}
}
