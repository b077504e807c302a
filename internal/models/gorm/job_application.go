package gorm

import (
	"time"

	"summit-insurance/portal/internal/constants"
)

// JobApplication is a candidate's application for an open position.
// ResumeKey points into the resume storage backend.
type JobApplication struct {
	ID          string                      `gorm:"column:id;primaryKey;type:uuid"`
	JobTitle    string                      `gorm:"column:job_title;type:varchar(200);not null"`
	FullName    string                      `gorm:"column:full_name;type:varchar(100);not null"`
	Email       string                      `gorm:"column:email;type:varchar(255);not null"`
	Phone       string                      `gorm:"column:phone;type:varchar(20);not null"`
	CoverLetter *string                     `gorm:"column:cover_letter;type:text"`
	ResumeKey   *string                     `gorm:"column:resume_key;type:varchar(255)"`
	Status      constants.ApplicationStatus `gorm:"column:status;type:varchar(20);not null;default:pending"`
	CreatedAt   time.Time                   `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (JobApplication) TableName() string {
	return "job_applications"
}
