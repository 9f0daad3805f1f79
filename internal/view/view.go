// Package view computes the derived presentation fields the back-office UI
// renders: enum-keyed style descriptors, currency labels, avatar initials and
// in-memory list filtering.
package view

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"insurance-backoffice/internal/model"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Color is a theme palette name.
type Color string

const (
	ColorPrimary   Color = "primary"
	ColorSecondary Color = "secondary"
	ColorSuccess   Color = "success"
	ColorError     Color = "error"
	ColorInfo      Color = "info"
	ColorWarning   Color = "warning"
	ColorDefault   Color = "default"
)

// Style describes how an enum value is rendered.
type Style struct {
	Color Color  `json:"color"`
	Icon  string `json:"icon,omitempty"`
}

var statusStyles = map[model.ClaimStatus]Style{
	model.StatusApproved: {Color: ColorSuccess},
	model.StatusRejected: {Color: ColorError},
	model.StatusSettled:  {Color: ColorInfo},
	model.StatusPending:  {Color: ColorWarning},
}

var policyStyles = map[model.PolicyType]Style{
	model.PolicyAuto:   {Color: ColorPrimary, Icon: "car"},
	model.PolicyHome:   {Color: ColorSecondary, Icon: "home"},
	model.PolicyHealth: {Color: ColorSuccess, Icon: "health"},
}

// StatusStyle returns the style for a claim status, defaulting to the pending
// warning style for anything unknown.
func StatusStyle(s model.ClaimStatus) Style {
	if style, ok := statusStyles[s]; ok {
		return style
	}
	return Style{Color: ColorWarning}
}

// PolicyStyle returns the style for a policy type with a generic fallback.
func PolicyStyle(t model.PolicyType) Style {
	if style, ok := policyStyles[t]; ok {
		return style
	}
	return Style{Color: ColorDefault, Icon: "description"}
}

var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders an amount as a grouped dollar string with no
// fractional cents, e.g. 1234.56 → "$1,235".
func FormatCurrency(amount float64) string {
	return currencyPrinter.Sprintf("$%d", int64(math.Round(amount)))
}

// Initials builds the avatar label for a customer: first letters of the first
// and last name, upper-cased.
func Initials(firstName, lastName string) string {
	var b strings.Builder
	for _, name := range []string{firstName, lastName} {
		r, size := utf8.DecodeRuneInString(strings.TrimSpace(name))
		if size > 0 && r != utf8.RuneError {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

func matches(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func normalize(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// FilterCustomers keeps customers whose first name, last name or email
// contains the search term, case-insensitively.
func FilterCustomers(list []model.Customer, term string) []model.Customer {
	term = normalize(term)
	if term == "" {
		return list
	}
	filtered := make([]model.Customer, 0, len(list))
	for _, c := range list {
		if matches(term, c.FirstName, c.LastName, c.Email) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// FilterPolicies keeps policies matching the optional type filter ("" or
// "ALL" disables it) and whose customer name, type or id contains the term.
func FilterPolicies(list []model.PolicyWithCustomer, term string, policyType string) []model.PolicyWithCustomer {
	term = normalize(term)
	filtered := make([]model.PolicyWithCustomer, 0, len(list))
	for _, p := range list {
		if policyType != "" && policyType != "ALL" && string(p.Policy.Type) != policyType {
			continue
		}
		if term != "" {
			name := p.Customer.FirstName + " " + p.Customer.LastName
			if !matches(term, name, string(p.Policy.Type), strconv.FormatInt(p.Policy.ID, 10)) {
				continue
			}
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// FilterClaims keeps claims matching the optional status filter and whose id,
// description, customer name or policy type contains the term.
func FilterClaims(list []model.ClaimWithPolicy, term string, status string) []model.ClaimWithPolicy {
	term = normalize(term)
	filtered := make([]model.ClaimWithPolicy, 0, len(list))
	for _, c := range list {
		if status != "" && status != "ALL" && string(c.Status) != status {
			continue
		}
		if term != "" {
			if !matches(term, strconv.FormatInt(c.ID, 10), c.Description, c.CustomerName, string(c.PolicyType)) {
				continue
			}
		}
		filtered = append(filtered, c)
	}
	return filtered
}
