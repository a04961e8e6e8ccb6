// Package models defines the database entities and shared error types for
// the blog API.
package models

import (
	"time"
)

// Post lifecycle statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// ValidStatus reports whether s is a known post status.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

type Post struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Title         string `gorm:"not null" json:"title"`
	Slug          string `gorm:"uniqueIndex;not null" json:"slug"`
	Excerpt       string `json:"excerpt"`
	Content       string `gorm:"not null" json:"content"`
	CoverImageURL string `json:"featured_image_url"`
	Status        string `gorm:"not null;default:draft;index" json:"status"`
	// PublishedAt records the first transition into "published" and is kept
	// when the post is later unpublished.
	PublishedAt     *time.Time `json:"published_at"`
	ReadingTime     int        `json:"reading_time"`
	MetaTitle       string     `json:"meta_title,omitempty"`
	MetaDescription string     `json:"meta_description,omitempty"`
	CategoryID      *uint      `gorm:"index" json:"category_id"`
	Category        *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags            []Tag      `gorm:"many2many:post_tags" json:"tags"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}

// PostTag is the join row linking a post to a tag. Rows carry no payload;
// the pair is the identity.
type PostTag struct {
	PostID uint `gorm:"primaryKey" json:"post_id"`
	TagID  uint `gorm:"primaryKey;index" json:"tag_id"`
}

func (PostTag) TableName() string {
	return "post_tags"
}
