// Package model holds the GORM persistence models mirroring the database tables.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null"`
	Name         string `gorm:"type:varchar(100)"`
	Role         string `gorm:"type:varchar(32);not null;default:user"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
