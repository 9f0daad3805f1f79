// Package apperror maps validation failures to user-facing field messages and
// classifies remote service failures.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// customMessages overrides the generic fallback per StructNamespace().tag key,
// so the forms surface the exact wording the back-office UI shows.
var customMessages = map[string]string{
	"CustomerInput.FirstName.required": "First name is required",
	"CustomerInput.FirstName.notblank": "First name is required",
	"CustomerInput.LastName.required":  "Last name is required",
	"CustomerInput.LastName.notblank":  "Last name is required",
	"CustomerInput.Email.required":     "Email is required",
	"CustomerInput.Email.emailshape":   "Email is invalid",
	"CustomerInput.Phone.required":     "Phone number is required",
	"CustomerInput.Phone.notblank":     "Phone number is required",
	"CustomerInput.Address.required":   "Address is required",
	"CustomerInput.Address.notblank":   "Address is required",

	"PolicyInput.Type.required":           "Policy type is required",
	"PolicyInput.Type.oneof":              "Policy type is required",
	"PolicyInput.StartDate.required":      "Start date is required",
	"PolicyInput.StartDate.dateshape":     "Start date is required",
	"PolicyInput.EndDate.required":        "End date is required",
	"PolicyInput.EndDate.dateshape":       "End date is required",
	"PolicyInput.CoverageAmount.required": "Coverage amount must be greater than 0",
	"PolicyInput.CoverageAmount.gt":       "Coverage amount must be greater than 0",
	"PolicyInput.CustomerID.required":     "Client is required",
	"PolicyInput.CustomerID.gt":           "Client is required",

	"ClaimInput.Date.required":           "Date is required",
	"ClaimInput.Date.dateshape":          "Date is required",
	"ClaimInput.Description.required":    "Description is required",
	"ClaimInput.Description.notblank":    "Description is required",
	"ClaimInput.ClaimedAmount.required":  "Claimed amount must be greater than 0",
	"ClaimInput.ClaimedAmount.gt":        "Claimed amount must be greater than 0",
	"ClaimInput.PolicyID.required":       "Policy is required",
	"ClaimInput.PolicyID.gt":             "Policy is required",
	"ClaimUpdate.Date.required":          "Date is required",
	"ClaimUpdate.Date.dateshape":         "Date is required",
	"ClaimUpdate.Description.required":   "Description is required",
	"ClaimUpdate.Description.notblank":   "Description is required",
	"ClaimUpdate.ClaimedAmount.required": "Claimed amount must be greater than 0",
	"ClaimUpdate.ClaimedAmount.gt":       "Claimed amount must be greater than 0",
	"ClaimUpdate.Status.required":        "Status is required",
	"ClaimUpdate.Status.oneof":           "Status is invalid",
	"ClaimUpdate.PolicyID.required":      "Policy is required",
	"ClaimUpdate.PolicyID.gt":            "Policy is required",
}

// FieldMessages converts validator errors into a field → message map keyed by
// the JSON field name. A nil or non-validator error yields an empty map.
func FieldMessages(err error) map[string]string {
	fields := make(map[string]string)

	var validationErr validator.ValidationErrors
	if !errors.As(err, &validationErr) {
		return fields
	}

	for _, e := range validationErr {
		key := e.StructNamespace() + "." + e.Tag()
		msg, ok := customMessages[key]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", e.Field())
		}
		fields[jsonField(e.Field())] = msg
	}
	return fields
}

// jsonField lowers the struct field name into its JSON tag spelling.
func jsonField(name string) string {
	switch name {
	case "PolicyID":
		return "policyId"
	case "CustomerID":
		return "customerId"
	}
	r := []rune(name)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// RemoteError is any failed call to one of the back-office services.
type RemoteError struct {
	Service string
	Op      string
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %s", e.Service, e.Op, e.Message)
	}
	return fmt.Sprintf("%s %s: status %d", e.Service, e.Op, e.Status)
}

// IsNotFound reports whether err is a remote 404 for a requested entity.
func IsNotFound(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Status == http.StatusNotFound
}

// RemoteMessage extracts the service-provided message from err, or returns
// fallback when there is none to show.
func RemoteMessage(err error, fallback string) string {
	var re *RemoteError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	return fallback
}
