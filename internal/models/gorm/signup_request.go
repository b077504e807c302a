package gorm

import (
	"time"

	"summit-insurance/portal/internal/constants"
)

// SignupRequest is an access application awaiting admin review.
// Email is unique across every status: a second request for an
// already-requested email is a conflict, never an overwrite.
type SignupRequest struct {
	ID         string                  `gorm:"column:id;primaryKey;type:uuid"`
	Email      string                  `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	FullName   string                  `gorm:"column:full_name;type:varchar(100);not null"`
	Phone      *string                 `gorm:"column:phone;type:varchar(20)"`
	Message    *string                 `gorm:"column:message;type:text"`
	Status     constants.RequestStatus `gorm:"column:status;type:varchar(20);not null;default:pending;index"`
	CreatedAt  time.Time               `gorm:"column:created_at;autoCreateTime"`
	ApprovedAt *time.Time              `gorm:"column:approved_at"`
	ApprovedBy *string                 `gorm:"column:approved_by;type:uuid"`
}

// TableName specifies the table name for GORM
func (SignupRequest) TableName() string {
	return "signup_requests"
}
