package gorm

import "time"

// AllowlistEntry is an email permitted to self-register. Written once by
// the approval workflow (or a manual admin insert) and read at
// registration time; never mutated afterwards.
type AllowlistEntry struct {
	ID         string    `gorm:"column:id;primaryKey;type:uuid"`
	Email      string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	ApprovedBy *string   `gorm:"column:approved_by;type:uuid"`
	Notes      *string   `gorm:"column:notes;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (AllowlistEntry) TableName() string {
	return "email_allowlist"
}
