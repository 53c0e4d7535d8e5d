package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidEmail  = errors.New("invalid email address")
)

// FieldLabels maps struct field names to the form's labels
var FieldLabels = map[string]string{
	"Name":    "Full Name",
	"Email":   "Email",
	"Phone":   "Phone",
	"Company": "Company",
	"Product": "Product Interest",
	"Message": "Message",
}

// FieldError is returned by ValidateEnquiry. It matches ErrMissingFields or
// ErrInvalidEmail with errors.Is and names the offending fields.
type FieldError struct {
	Kind    error
	Fields  []string
	Details []string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, strings.Join(e.Fields, ", "))
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

// ValidateEnquiry runs the struct rules on req and reduces the result to a
// single reason. Missing fields win over a malformed email; only the first
// failing check is reported.
func ValidateEnquiry(v *validator.Validate, req any) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	missing := &FieldError{Kind: ErrMissingFields}
	malformed := &FieldError{Kind: ErrInvalidEmail}
	for _, e := range validationErrors {
		var target *FieldError
		switch e.Tag() {
		case "required":
			target = missing
		case "enquiry_email":
			target = malformed
		default:
			return fmt.Errorf("unexpected validation rule %q on %s", e.Tag(), e.Field())
		}
		target.Fields = append(target.Fields, e.Field())
		target.Details = append(target.Details, formatSingleError(e))
	}

	if len(missing.Fields) > 0 {
		return missing
	}
	return malformed
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", label)
	case "enquiry_email":
		return fmt.Sprintf("%s: is not a valid email address", label)
	default:
		return fmt.Sprintf("%s: failed validation (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}
