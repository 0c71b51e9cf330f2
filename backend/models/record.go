package models

import "gorm.io/gorm"

// UserRecord is the remote document store row: one JSON-serialized UserData
// aggregate per owner. UpdatedAt is the server-assigned save timestamp used
// for local/remote conflict resolution.
type UserRecord struct {
	gorm.Model
	OwnerID  string `gorm:"uniqueIndex;not null"`
	Document string `gorm:"type:text;not null"`
}
