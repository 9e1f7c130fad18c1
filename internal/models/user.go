package models

import "time"

// SingletonUserID is the only permitted user row id; the schema enforces it
// with a CHECK constraint so a second account can never be created.
const SingletonUserID = 1

type User struct {
	ID           uint      `gorm:"primaryKey"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}
