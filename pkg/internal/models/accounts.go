package models

import "time"

// User is a seeded demo profile. Profiles are created once by the seed
// loader and never mutated or deleted afterwards, which is why lookups on
// them are safe to cache indefinitely.
type User struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar" validate:"omitempty,url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
