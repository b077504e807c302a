package gorm

import (
	"time"

	"summit-insurance/portal/internal/constants"
)

// UserRole assigns a coarse role to a user. Provisioned out-of-band;
// this codebase only ever reads it, and only from the privileged
// verification path. Absence of a row means no elevated privilege.
type UserRole struct {
	UserID    string         `gorm:"column:user_id;primaryKey;type:uuid"`
	Role      constants.Role `gorm:"column:role;primaryKey;type:varchar(20)"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (UserRole) TableName() string {
	return "user_roles"
}
