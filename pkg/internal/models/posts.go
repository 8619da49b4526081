package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	CategoryLifestyle    = "Lifestyle"
	CategoryDesign       = "Design"
	CategoryTechnology   = "Technology"
	CategoryProductivity = "Productivity"
	CategoryArchitecture = "Architecture"
)

// PostCategories is the fixed set of categories the editor offers. The
// store itself does not reject unknown values; the hosting surface does.
var PostCategories = []string{
	CategoryLifestyle,
	CategoryDesign,
	CategoryTechnology,
	CategoryProductivity,
	CategoryArchitecture,
}

type Post struct {
	ID       string `json:"id" gorm:"primaryKey"`
	AuthorID string `json:"author_id" gorm:"index" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Category string `json:"category"`
	Excerpt  string `json:"excerpt"`
	Image    string `json:"image" validate:"omitempty,url"`
	Language string `json:"language"`

	// Date is the human-readable display form ("December 2, 2025");
	// PublishedAt is the canonical instant every ordering relies on.
	Date        string    `json:"date"`
	PublishedAt time.Time `json:"published_at" gorm:"index"`

	Content   datatypes.JSONSlice[string] `json:"content"`
	MediaURLs datatypes.JSONSlice[string] `json:"media_urls"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Read-time enrichment, never persisted. Author stays nil when the
	// author id does not resolve to a seeded profile.
	Author   *User     `json:"author,omitempty" gorm:"-"`
	Comments []Comment `json:"comments" gorm:"-"`
	Likes    []string  `json:"likes" gorm:"-"`
}

type Comment struct {
	ID      string `json:"id" gorm:"primaryKey"`
	PostID  string `json:"post_id" gorm:"index"`
	UserID  string `json:"user_id"`
	Content string `json:"content"`

	CreatedAt time.Time `json:"created_at"`

	User *User `json:"user,omitempty" gorm:"-"`
}

// Like is one edge of a post's like set. The composite primary key is what
// makes the set semantics a table constraint instead of an application
// promise.
type Like struct {
	PostID    string    `json:"post_id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}
