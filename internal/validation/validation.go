// Package validation holds the shared request validation used by the
// registration and project workflows, including the canonical WhatsApp
// number form.
package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/teamnotfound/signup-backend/internal/apperr"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var (
	nonDigits         = regexp.MustCompile(`\D`)
	canonicalWhatsApp = regexp.MustCompile(`^\+20\d{10}$`)
)

// MemberInput is the registration payload after JSON decoding and before
// normalization. DeviceID presence is checked by the workflow, not here: the
// duplicate check runs before the device-id requirement.
type MemberInput struct {
	Name           string `validate:"required,max=120"`
	WhatsappNumber string `validate:"required"`
	ProjectID      string `validate:"required,uuid"`
	SectionNumber  *int   `validate:"omitempty,min=1,max=4"`
	PhotoURL       string `validate:"omitempty,max=2048"`
	DeviceID       string `validate:"omitempty,max=64"`
}

// ValidateMember checks the payload and rewrites WhatsappNumber to its
// canonical +20XXXXXXXXXX form. Returns a validation error on any failure.
func ValidateMember(in *MemberInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if err := validate.Struct(in); err != nil {
		return apperr.Validation("invalid member data")
	}
	normalized, err := NormalizeWhatsAppNumber(in.WhatsappNumber)
	if err != nil {
		return err
	}
	in.WhatsappNumber = normalized
	return nil
}

// NormalizeWhatsAppNumber reduces raw input to the canonical Egyptian form:
// non-digits are stripped, a bare 10-digit local number gets the +20 country
// code, a number already carrying it gets only the leading plus.
func NormalizeWhatsAppNumber(raw string) (string, error) {
	digits := nonDigits.ReplaceAllString(raw, "")

	var normalized string
	switch {
	case strings.HasPrefix(digits, "20") && len(digits) >= 11:
		normalized = "+" + digits
	case len(digits) == 10:
		normalized = "+20" + digits
	default:
		return "", apperr.Validation("invalid phone number format")
	}

	if !canonicalWhatsApp.MatchString(normalized) {
		return "", apperr.Validation("must be a valid Egyptian phone number")
	}
	return normalized, nil
}

// ValidateProjectName checks an admin-supplied project name and returns the
// trimmed form.
func ValidateProjectName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if err := validate.Var(name, "required,max=120"); err != nil {
		return "", apperr.Validation("invalid project data")
	}
	return name, nil
}
