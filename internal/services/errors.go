package services

import "errors"

// Typed outcomes for the handler boundary. Handlers translate these to
// user-facing copy and status codes; nothing below ever reaches a
// client verbatim.
var (
	// signup-request workflow
	ErrDuplicateRequest  = errors.New("signup request already exists for this email")
	ErrRequestNotFound   = errors.New("signup request not found")
	ErrRequestNotPending = errors.New("signup request is no longer pending")

	// allow-list
	ErrAlreadyAllowlisted = errors.New("email is already allow-listed")

	// auth
	ErrNotAuthorized      = errors.New("email is not authorized to register")
	ErrAccountExists      = errors.New("an account already exists for this email")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// members
	ErrMemberNotFound = errors.New("member not found")

	// job applications
	ErrApplicationNotFound = errors.New("job application not found")
	ErrNoResume            = errors.New("application has no resume on file")
	ErrResumeTooLarge      = errors.New("resume exceeds the size limit")
	ErrResumeBadType       = errors.New("resume must be a PDF, DOC, or DOCX file")
)
