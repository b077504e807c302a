package gorm

import "time"

// ContactSubmission is a message from the public contact form.
type ContactSubmission struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	Name      string    `gorm:"column:name;type:varchar(100);not null"`
	Email     string    `gorm:"column:email;type:varchar(255);not null"`
	Phone     *string   `gorm:"column:phone;type:varchar(20)"`
	Message   string    `gorm:"column:message;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
