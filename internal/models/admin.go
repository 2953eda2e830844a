package models

import "gorm.io/gorm"

// Admin is a separate authentication namespace from User: operators are
// provisioned out-of-band and never self-register.
type Admin struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string `gorm:"not null"` // bcrypt, or a legacy md5 digest pending upgrade
}
