// Package validators applies declarative per-field rule tables to
// request payloads and reports field-scoped violations. Checks are
// pure; nothing here touches storage.
package validators

import (
	"fmt"
	"regexp"

	apperrors "taskdesk.com/taskdesk/internal/errors"
)

// Check inspects a field value and returns a violation message, or ""
// when the value passes.
type Check func(value string) string

type Field struct {
	Name     string
	Value    string
	Optional bool
	Checks   []Check
}

// Apply runs every field's checks. Required fields that are absent
// yield a single "is required" violation; optional absent fields are
// skipped entirely.
func Apply(fields []Field) []apperrors.Violation {
	var violations []apperrors.Violation

	for _, f := range fields {
		if f.Value == "" {
			if !f.Optional {
				violations = append(violations, apperrors.Violation{
					Field:   f.Name,
					Message: fmt.Sprintf("%s is required", f.Name),
				})
			}
			continue
		}

		for _, check := range f.Checks {
			if msg := check(f.Value); msg != "" {
				violations = append(violations, apperrors.Violation{
					Field:   f.Name,
					Message: msg,
				})
			}
		}
	}

	return violations
}

// asError wraps a non-empty violation list into the 422 exception the
// HTTP layer serializes.
func asError(violations []apperrors.Violation) error {
	if len(violations) == 0 {
		return nil
	}
	return apperrors.NewValidationException(violations)
}

func MinLen(n int) Check {
	return func(value string) string {
		if len([]rune(value)) < n {
			return fmt.Sprintf("must be at least %d characters long", n)
		}
		return ""
	}
}

func MaxLen(n int) Check {
	return func(value string) string {
		if len([]rune(value)) > n {
			return fmt.Sprintf("must be at most %d characters long", n)
		}
		return ""
	}
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func Email() Check {
	return func(value string) string {
		if !emailPattern.MatchString(value) {
			return "must be a valid email address"
		}
		return ""
	}
}

func Matches(pattern *regexp.Regexp, msg string) Check {
	return func(value string) string {
		if !pattern.MatchString(value) {
			return msg
		}
		return ""
	}
}

// Enum adapts a membership predicate into a check.
func Enum(valid func(string) bool, msg string) Check {
	return func(value string) string {
		if !valid(value) {
			return msg
		}
		return ""
	}
}
