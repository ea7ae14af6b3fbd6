// Package taskctl validates task form input before it reaches the store.
package taskctl

import (
	"strings"

	"userdash/internal/validation"
)

// ValidateNewTask checks input for a new task. The only rule is a
// non-empty trimmed title; the description is free-form.
func ValidateNewTask(title string) validation.Errors {
	errs := validation.Errors{}
	if strings.TrimSpace(title) == "" {
		errs.Add("title", validation.ReasonRequired)
	}
	return errs
}

// PrepareNewTask trims new-task input for storage. Callers must have
// validated first.
func PrepareNewTask(title, description string) (string, string) {
	return strings.TrimSpace(title), strings.TrimSpace(description)
}

// PrepareUpdate trims task-edit input and rejects updates that would
// leave the title empty. The returned strings are the values to store.
func PrepareUpdate(title, description string) (string, string, validation.Errors) {
	errs := validation.Errors{}
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" {
		errs.Add("title", validation.ReasonRequired)
	}
	return title, description, errs
}
