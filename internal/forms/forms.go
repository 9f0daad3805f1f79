// Package forms validates entity form submissions before any remote call is
// made. Each validator returns a field → message map; a non-empty map blocks
// submission.
package forms

import (
	"regexp"
	"strings"
	"time"

	"insurance-backoffice/internal/apperror"
	"insurance-backoffice/internal/model"

	"github.com/go-playground/validator/v10"
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// EmailValidator accepts any address shaped like local@domain.tld.
var EmailValidator = func(fl validator.FieldLevel) bool {
	return emailPattern.MatchString(fl.Field().String())
}

// NotBlankValidator rejects strings that are empty once trimmed.
var NotBlankValidator = func(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// DateValidator accepts calendar dates in the service wire format.
var DateValidator = func(fl validator.FieldLevel) bool {
	_, err := time.Parse(model.DateLayout, fl.Field().String())
	return err == nil
}

// Validator wraps a configured validator instance with the custom rules the
// entity forms rely on.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the custom rules registered.
func New() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("emailshape", EmailValidator)
	_ = v.RegisterValidation("notblank", NotBlankValidator)
	_ = v.RegisterValidation("dateshape", DateValidator)
	return &Validator{validate: v}
}

// Customer validates the customer form.
func (f *Validator) Customer(in model.CustomerInput) map[string]string {
	return apperror.FieldMessages(f.validate.Struct(in))
}

// Policy validates the policy form, including the rule that the end date must
// fall strictly after the start date.
func (f *Validator) Policy(in model.PolicyInput) map[string]string {
	fields := apperror.FieldMessages(f.validate.Struct(in))

	if _, bad := fields["endDate"]; !bad {
		start, err1 := time.Parse(model.DateLayout, in.StartDate)
		end, err2 := time.Parse(model.DateLayout, in.EndDate)
		if err1 == nil && err2 == nil && !end.After(start) {
			fields["endDate"] = "End date must be after start date"
		}
	}
	return fields
}

// Claim validates the claim create form.
func (f *Validator) Claim(in model.ClaimInput) map[string]string {
	return apperror.FieldMessages(f.validate.Struct(in))
}

// ClaimUpdate validates the claim edit form. Status transitions are not
// checked here; the edit path is the administrative override.
func (f *Validator) ClaimUpdate(in model.ClaimUpdate) map[string]string {
	return apperror.FieldMessages(f.validate.Struct(in))
}

// Credentials validates the login form.
func (f *Validator) Credentials(in model.Credentials) map[string]string {
	return apperror.FieldMessages(f.validate.Struct(in))
}
