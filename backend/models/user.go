package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email        string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`
	DisplayName  string
}

type LoginHistory struct {
	gorm.Model
	UserID    uint
	LoginTime time.Time
}
