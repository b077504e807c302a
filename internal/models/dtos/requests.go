package dtos

// SignupRequestReq is the public request-access form payload.
type SignupRequestReq struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	Message  string `json:"message,omitempty"`
}

// SignUpReq creates an account for an allow-listed email.
type SignUpReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// SignInReq verifies credentials and issues a session token.
type SignInReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetPasswordReq is the admin-invoked privileged password reset.
type ResetPasswordReq struct {
	NewPassword string `json:"new_password"`
}

// UpdateProfileReq edits the caller's own profile.
type UpdateProfileReq struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// ContactReq is the public contact form payload.
type ContactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// AllowlistAddReq manually authorizes an email without a signup request.
type AllowlistAddReq struct {
	Email string `json:"email"`
	Notes string `json:"notes,omitempty"`
}

// JobApplicationReq is the multipart form payload of a job application,
// minus the resume file which travels as a separate part.
type JobApplicationReq struct {
	JobTitle    string
	FullName    string
	Email       string
	Phone       string
	CoverLetter string
}
