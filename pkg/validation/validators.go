package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Shape check only: something@something.something, no whitespace or extra @.
	// Whitespace includes \v, Unicode separators and the BOM, not just ASCII.
	enquiryEmailRegex = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)
)

// New returns a validator with the custom enquiry rules registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("enquiry_email", EnquiryEmail)
}

// EnquiryEmail is a syntactic sanity check, not RFC 5322 validation.
func EnquiryEmail(fl validator.FieldLevel) bool {
	return IsEnquiryEmail(fl.Field().String())
}

func IsEnquiryEmail(s string) bool {
	return enquiryEmailRegex.MatchString(s)
}
