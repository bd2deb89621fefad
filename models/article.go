package models

import (
	"time"
)

type Language string

const (
	LanguageEN Language = "en"
	LanguageJA Language = "ja"
)

type Article struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Title        string    `json:"title" gorm:"not null"`
	Description  *string   `json:"description"`
	Content      *string   `json:"content"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	URL          string    `json:"url" gorm:"not null"`
	Author       *string   `json:"author"`
	SourceName   string    `json:"source_name" gorm:"not null"`
	Score        int       `json:"score" gorm:"default:0"`
	CommentCount int       `json:"comment_count" gorm:"default:0"`
	PublishedAt  time.Time `json:"published_at" gorm:"index"`
	IsFeatured   bool      `json:"is_featured" gorm:"default:false;index"`
	CategoryID   *uint     `json:"category_id" gorm:"index"`
	Category     *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Language     Language  `json:"language" gorm:"not null;default:'en';index"`
	Tags         TagList   `json:"tags" gorm:"type:text;not null;default:'[]'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
