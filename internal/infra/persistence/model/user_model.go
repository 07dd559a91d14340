// Package model holds the GORM persistence structs. They never leave the infra layer.
package model

import (
	"time"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	UserID       int64      `gorm:"column:user_id;primaryKey;autoIncrement"`
	FirstName    string     `gorm:"column:first_name;type:varchar(255);not null"`
	LastName     string     `gorm:"column:last_name;type:varchar(255)"`
	Username     string     `gorm:"column:username;type:varchar(255);not null"`
	EmailAddress string     `gorm:"column:email_address;type:varchar(255);not null;uniqueIndex"`
	Photo        string     `gorm:"column:photo;type:text"`
	Password     string     `gorm:"column:password;type:varchar(255);not null"`
	Role         string     `gorm:"column:role;type:user_role;not null;default:'consumer'"`
	IsVerified   bool       `gorm:"column:is_verified;not null;default:false"`
	CreatedOn    time.Time  `gorm:"column:created_on;autoCreateTime"`
	LastLoginAt  *time.Time `gorm:"column:last_login_at"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
