package models

import (
	"time"

	"gorm.io/gorm"
)

// Category groups posts under a unique URL slug. Categories are created and
// edited through the admin CLI only; an unpublished category hides every
// post filed under it from the public feeds.
type Category struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Slug        string         `gorm:"unique;not null;index" json:"slug"`
	IsPublished bool           `gorm:"not null;default:true" json:"is_published"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
