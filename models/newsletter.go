package models

import "time"

// NewsletterSubscription is a single opted-in address. One row per address.
type NewsletterSubscription struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}
