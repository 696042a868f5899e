// Package validation holds the per-entity-kind field rules: trimming,
// required-field aggregation, format checks and uniqueness checks against
// the current document state. Validators return the normalized entity on
// success and a structured DomainError on failure; they never mutate the
// document themselves.
package validation

import "regexp"

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)
