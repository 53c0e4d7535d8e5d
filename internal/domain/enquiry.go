package domain

import (
	"context"
	"time"
)

// User-facing messages returned in EnquiryResponse.
const (
	MsgMissingFields    = "Missing required fields"
	MsgInvalidEmail     = "Invalid email address"
	MsgEnquiryAccepted  = "Enquiry submitted successfully. We'll contact you soon."
	MsgProcessingFailed = "Failed to process enquiry. Please try again."
)

// EnquiryRequest is a product enquiry submitted from the website form.
type EnquiryRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,enquiry_email"`
	Phone   string `json:"phone" validate:"required"`
	Company string `json:"company,omitempty"`
	Product string `json:"product" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// EnquiryResponse is the whole contract between the form and the server.
type EnquiryResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type DeliveryStatus string

const (
	DeliverySent    DeliveryStatus = "sent"
	DeliveryFailed  DeliveryStatus = "failed"
	DeliverySkipped DeliveryStatus = "skipped"
)

// DeliveryReport describes the notification attempt for one enquiry. It is
// only ever logged; callers of the HTTP API never see it.
type DeliveryReport struct {
	Provider string
	Status   DeliveryStatus
	Err      error
}

// EnquiryReceipt is returned once an enquiry has been accepted, whatever
// happened to the notification.
type EnquiryReceipt struct {
	ReceivedAt time.Time
	Delivery   DeliveryReport
}

// EnquiryUsecase defines the enquiry submission pipeline
type EnquiryUsecase interface {
	// Submit validates, logs and relays an enquiry. Validation failures are
	// returned as *apperror.AppError with status 400.
	Submit(ctx context.Context, req *EnquiryRequest) (*EnquiryReceipt, error)
}
