package models

import "time"

// Subscription is a follow edge between two profiles. A pair may exist at
// most once; nothing stops a profile from following itself.
type Subscription struct {
	UserID         string    `json:"user_id" gorm:"primaryKey"`
	SubscribedToID string    `json:"subscribed_to_id" gorm:"primaryKey"`
	CreatedAt      time.Time `json:"created_at"`
}
