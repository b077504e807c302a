package constants

// User-facing copy returned by the API. Auth messages are deliberately
// generic so responses never reveal whether an email is registered or
// allow-listed.
const (
	MsgDuplicateRequest   = "A request with this email already exists."
	MsgRequestSubmitted   = "Your request has been submitted. An administrator will review it shortly."
	MsgRequestProcessed   = "This request was already processed."
	MsgRequestNotFound    = "Signup request not found."
	MsgNotAuthorized      = "Your email is not authorized. Please contact an administrator for access."
	MsgSignupFailed       = "Unable to create account. Please check your email is authorized and try again."
	MsgInvalidCredentials = "Invalid email or password. Please try again."
	MsgAccessDenied       = "Access denied."
	MsgGenericFailure     = "Something went wrong. Please try again."
)
