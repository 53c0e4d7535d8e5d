package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mfroosh-trade-backend/internal/domain"
	"mfroosh-trade-backend/pkg/apperror"
	"mfroosh-trade-backend/pkg/email"
	"mfroosh-trade-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// Deliverer relays a built notification and reports the outcome.
type Deliverer interface {
	Deliver(ctx context.Context, msg email.Message) email.Report
}

type enquiryUsecase struct {
	validate  *validator.Validate
	deliverer Deliverer
	addr      email.Addressing
	log       *slog.Logger
	now       func() time.Time
}

// NewEnquiryUsecase creates a new enquiry usecase
func NewEnquiryUsecase(validate *validator.Validate, deliverer Deliverer, addr email.Addressing, log *slog.Logger) domain.EnquiryUsecase {
	return &enquiryUsecase{
		validate:  validate,
		deliverer: deliverer,
		addr:      addr,
		log:       log,
		now:       time.Now,
	}
}

// Submit validates the enquiry, records it, and attempts one notification.
// Once validation passes the enquiry is accepted; the delivery outcome is
// carried in the receipt for logging only.
func (uc *enquiryUsecase) Submit(ctx context.Context, req *domain.EnquiryRequest) (*domain.EnquiryReceipt, error) {
	if req == nil {
		return nil, apperror.BadRequest(domain.MsgMissingFields)
	}

	if err := validation.ValidateEnquiry(uc.validate, req); err != nil {
		var fe *validation.FieldError
		switch {
		case errors.As(err, &fe) && errors.Is(err, validation.ErrMissingFields):
			uc.log.Warn("Enquiry rejected", "reason", "missing_fields", "fields", fe.Fields)
			return nil, apperror.BadRequest(domain.MsgMissingFields)
		case errors.As(err, &fe) && errors.Is(err, validation.ErrInvalidEmail):
			uc.log.Warn("Enquiry rejected", "reason", "invalid_email")
			return nil, apperror.BadRequest(domain.MsgInvalidEmail)
		default:
			return nil, apperror.Internal(domain.MsgProcessingFailed, fmt.Errorf("validate enquiry: %w", err))
		}
	}

	receivedAt := uc.now().UTC()

	// Audit record; the only durable trace of the enquiry.
	uc.log.Info("Enquiry received",
		"name", req.Name,
		"email", req.Email,
		"phone", req.Phone,
		"company", req.Company,
		"product", req.Product,
		"message", req.Message,
		"timestamp", receivedAt.Format(time.RFC3339),
	)

	msg, err := email.BuildEnquiryMessage(uc.addr, email.EnquiryEmailData{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Product: req.Product,
		Message: req.Message,
	})
	if err != nil {
		return nil, apperror.Internal(domain.MsgProcessingFailed, err)
	}

	report := uc.deliverer.Deliver(ctx, msg)

	return &domain.EnquiryReceipt{
		ReceivedAt: receivedAt,
		Delivery: domain.DeliveryReport{
			Provider: report.Provider,
			Status:   domain.DeliveryStatus(report.Status),
			Err:      report.Err,
		},
	}, nil
}
