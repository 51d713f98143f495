package model

import "time"

// LoginAttemptModel mirrors the append-only 'login_attempts' table.
// UserID is nullable: NULL marks an attempt that matched no account.
type LoginAttemptModel struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    *uint   `gorm:"index"`
	Email     string  `gorm:"type:varchar(255);not null;index"`
	IP        string  `gorm:"type:varchar(64);not null"`
	UserAgent *string `gorm:"type:text"`
	Success   bool    `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LoginAttemptModel) TableName() string {
	return "login_attempts"
}
