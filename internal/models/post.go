package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a blog publication. PubDate may be in the future for
// scheduled posts; such posts stay hidden from everyone but their author
// until the timestamp passes.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	ImageURL    string    `json:"image_url,omitempty"`
	PubDate     time.Time `gorm:"not null;index" json:"pub_date"`
	IsPublished bool      `gorm:"not null;default:true" json:"is_published"`
	AuthorID    uint      `gorm:"not null;index" json:"author_id"`
	Author      User      `gorm:"foreignKey:AuthorID" json:"author"`
	CategoryID  *uint     `gorm:"index" json:"category_id,omitempty"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	LocationID  *uint     `gorm:"index" json:"location_id,omitempty"`
	Location    *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int            `gorm:"->" json:"comments_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// VisibleAt reports whether the post satisfies the public visibility
// invariant at the given instant: the post is published, its publish
// timestamp has passed, and its category (if any) is published.
// Category must be preloaded when CategoryID is set.
func (p *Post) VisibleAt(now time.Time) bool {
	if !p.IsPublished || p.PubDate.After(now) {
		return false
	}
	if p.CategoryID != nil && (p.Category == nil || !p.Category.IsPublished) {
		return false
	}
	return true
}

// VisibleTo reports whether the given user may read the post. Authors
// always see their own posts regardless of publication state.
func (p *Post) VisibleTo(userID uint, now time.Time) bool {
	return p.AuthorID == userID || p.VisibleAt(now)
}

// IsAuthor is the ownership predicate for post mutations.
func (p *Post) IsAuthor(userID uint) bool {
	return p.AuthorID == userID
}
