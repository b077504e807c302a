package gorm

import "time"

// Profile is the member-facing record tied 1:1 to an account.
type Profile struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	FullName  *string   `gorm:"column:full_name;type:varchar(100)"`
	Phone     *string   `gorm:"column:phone;type:varchar(20)"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Profile) TableName() string {
	return "profiles"
}
