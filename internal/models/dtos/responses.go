package dtos

import "time"

// APIResponse is the standard envelope for every JSON endpoint.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time,omitempty"`
	Data         any    `json:"data,omitempty"`
}

// SignupRequestResp mirrors one signup request for the admin console.
type SignupRequestResp struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	FullName   string     `json:"full_name"`
	Phone      *string    `json:"phone"`
	Message    *string    `json:"message"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	ApprovedBy *string    `json:"approved_by,omitempty"`
}

// SessionResp carries the issued token and the profile it belongs to.
type SessionResp struct {
	Token   string       `json:"token"`
	Profile *ProfileResp `json:"profile,omitempty"`
}

// ProfileResp is the member-facing profile view.
type ProfileResp struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// VerifyAdminResp is the privileged admin-verification verdict.
type VerifyAdminResp struct {
	IsAdmin bool `json:"isAdmin"`
}

// MemberResp is one row of the admin members listing.
type MemberResp struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	Roles     []string  `json:"roles"`
}

// AllowlistEntryResp is one allow-list row for the admin console.
type AllowlistEntryResp struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	ApprovedBy *string   `json:"approved_by,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ContactSubmissionResp is one stored contact submission.
type ContactSubmissionResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// JobApplicationResp is one stored job application.
type JobApplicationResp struct {
	ID          string    `json:"id"`
	JobTitle    string    `json:"job_title"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	CoverLetter *string   `json:"cover_letter"`
	HasResume   bool      `json:"has_resume"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
