package model

import "time"

// User represents a registered catalog user.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:100;not null"`
	Password  string    `json:"-" gorm:"size:255;not null"` // bcrypt hash, never exposed in JSON
	CreatedAt time.Time `json:"created_at"`
}
