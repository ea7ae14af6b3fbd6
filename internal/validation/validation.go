// Package validation defines the field-level validation errors shared by
// the session and task controllers.
package validation

import (
	"fmt"
	"regexp"
	"sort"
)

// Reason classifies why a field failed validation.
type Reason string

const (
	// ReasonRequired means the field was empty (after trimming, where
	// the field's rule trims).
	ReasonRequired Reason = "required"

	// ReasonInvalidFormat means the value does not match the expected
	// shape (currently only used for email addresses).
	ReasonInvalidFormat Reason = "invalid_format"

	// ReasonTooShort means the value is shorter than the field's minimum.
	ReasonTooShort Reason = "too_short"

	// ReasonMismatch means the value must equal another field and didn't
	// (password confirmation).
	ReasonMismatch Reason = "mismatch"
)

// FieldError is a single field validation failure. It is the only error
// type surfaced to the user for correction; it never terminates the
// program.
type FieldError struct {
	Field  string
	Reason Reason
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message())
}

// Message returns the human-readable message for the failure.
func (e FieldError) Message() string {
	switch e.Reason {
	case ReasonRequired:
		return "is required"
	case ReasonInvalidFormat:
		return "is invalid"
	case ReasonTooShort:
		return "is too short"
	case ReasonMismatch:
		return "does not match"
	default:
		return string(e.Reason)
	}
}

// Errors collects field failures keyed by field name. An empty map means
// the input is valid.
type Errors map[string]FieldError

// Valid reports whether no field failed.
func (e Errors) Valid() bool { return len(e) == 0 }

// Add records a failure for a field. The first failure per field wins,
// matching the rule order in each validator.
func (e Errors) Add(field string, reason Reason) {
	if _, exists := e[field]; exists {
		return
	}
	e[field] = FieldError{Field: field, Reason: reason}
}

// Fields returns the failed field names in lexical order, for stable
// CLI output.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// emailPattern is the basic local@domain.tld shape check. Deliberately
// loose: this is a format hint for the user, not RFC 5322 enforcement.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidEmail reports whether s has a basic email shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
