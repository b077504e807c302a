package constants

// RequestStatus is the lifecycle state of a signup request.
// Transitions are pending -> approved or pending -> rejected; both
// terminal states are final.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

func (s RequestStatus) String() string { return string(s) }

// ApplicationStatus is the review state of a job application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationReviewed ApplicationStatus = "reviewed"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) String() string { return string(s) }
