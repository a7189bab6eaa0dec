// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered blog author. The Password column stores the
// salted credential in "salt,digest" form, never plaintext.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
