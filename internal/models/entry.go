package models

import (
	"time"
)

// Entry is a single blog post. Entries are immutable once created; there are
// no update or delete paths.
type Entry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Subject   string    `gorm:"not null" json:"subject"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
