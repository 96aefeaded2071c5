package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment is a reader's note on a post. Comments are listed in ascending
// creation order and die with their post.
type Comment struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Text        string         `gorm:"type:text;not null" json:"text"`
	IsPublished bool           `gorm:"not null;default:true" json:"is_published"`
	AuthorID    uint           `gorm:"not null;index" json:"author_id"`
	Author      User           `gorm:"foreignKey:AuthorID" json:"author"`
	PostID      uint           `gorm:"not null;index" json:"post_id"`
	Post        Post           `gorm:"foreignKey:PostID" json:"post,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsAuthor is the ownership predicate for comment mutations.
func (c *Comment) IsAuthor(userID uint) bool {
	return c.AuthorID == userID
}
