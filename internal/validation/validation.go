package validation

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
)

// Field limits shared with the browser client. Server-side checks are
// authoritative; the client only mirrors them for inline feedback.
const (
	MaxEmailLen       = 255
	MaxNameLen        = 100
	MaxPhoneLen       = 20
	MaxRequestMsgLen  = 1000
	MaxContactMsgLen  = 2000
	MaxCoverLetterLen = 2000
	MaxJobTitleLen    = 200
	MinPasswordLen    = 8
	MaxPasswordLen    = 72
)

// Error is a single-field validation failure. It never reaches the
// store; handlers surface Message inline with a 400.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func fieldError(field, message string) *Error {
	return &Error{Field: field, Message: message}
}

// Email checks an RFC-shaped address with a bounded length.
func Email(field, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fieldError(field, "Email is required")
	}
	if len(value) > MaxEmailLen {
		return fieldError(field, fmt.Sprintf("Email must be less than %d characters", MaxEmailLen))
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return fieldError(field, "Invalid email address")
	}
	return nil
}

// RequiredText checks a required free-text field against a length bound.
func RequiredText(field, value string, maxLen int) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fieldError(field, fmt.Sprintf("%s is required", displayName(field)))
	}
	if len(value) > maxLen {
		return fieldError(field, fmt.Sprintf("%s must be less than %d characters", displayName(field), maxLen))
	}
	return nil
}

// OptionalText checks an optional free-text field against a length bound.
func OptionalText(field, value string, maxLen int) error {
	if len(strings.TrimSpace(value)) > maxLen {
		return fieldError(field, fmt.Sprintf("%s must be less than %d characters", displayName(field), maxLen))
	}
	return nil
}

// Password enforces the signup password policy: bounded length with at
// least one uppercase letter, one lowercase letter and one digit.
func Password(value string) error {
	if len(value) < MinPasswordLen {
		return fieldError("password", fmt.Sprintf("Password must be at least %d characters", MinPasswordLen))
	}
	if len(value) > MaxPasswordLen {
		return fieldError("password", fmt.Sprintf("Password must be less than %d characters", MaxPasswordLen))
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range value {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		return fieldError("password", "Password must contain at least one uppercase letter")
	}
	if !hasLower {
		return fieldError("password", "Password must contain at least one lowercase letter")
	}
	if !hasDigit {
		return fieldError("password", "Password must contain at least one number")
	}
	return nil
}

func displayName(field string) string {
	switch field {
	case "full_name":
		return "Full name"
	case "cover_letter":
		return "Cover letter"
	case "job_title":
		return "Job title"
	default:
		if field == "" {
			return "Field"
		}
		return strings.ToUpper(field[:1]) + field[1:]
	}
}
