// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"userdash/internal/store"
)

const (
	// SectionSeparator is the separator line for list sections.
	SectionSeparator = "------------"
)

// FormatTask formats a task line for the list command.
// Format: "{ID:>4}  [{x| }] {TITLE}\n", with the description appended
// after " - " when present.
func FormatTask(w io.Writer, task store.Task) {
	marker := " "
	if task.Completed {
		marker = "x"
	}
	line := fmt.Sprintf("%4d  [%s] %s", task.ID, marker, normalizeTitle(task.Title))
	if desc := normalizeDescription(task.Description); desc != "" {
		line += " - " + desc
	}
	fmt.Fprintln(w, line)
}

// FormatSectionHeader formats a Pending/Completed section header.
func FormatSectionHeader(w io.Writer, title string) {
	fmt.Fprintln(w, SectionSeparator)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, SectionSeparator)
}

// FormatProfile formats the profile command's output.
func FormatProfile(w io.Writer, user store.User) {
	fmt.Fprintf(w, "name:  %s\n", user.Name)
	fmt.Fprintf(w, "email: %s\n", user.Email)
	if user.Bio != "" {
		fmt.Fprintf(w, "bio:   %s\n", user.Bio)
	}
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

// normalizeDescription flattens a description to a single display line.
func normalizeDescription(desc string) string {
	desc = strings.ReplaceAll(desc, "\r", " ")
	desc = strings.ReplaceAll(desc, "\n", " ")
	return strings.TrimSpace(desc)
}
