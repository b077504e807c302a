package gorm

import "time"

// Account holds the credentials for an authenticated user.
type Account struct {
	ID           string    `gorm:"column:id;primaryKey;type:uuid"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(100);not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Account) TableName() string {
	return "accounts"
}
