package models

import (
	"time"
)

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

type UserPreference struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	UserID        string    `json:"user_id" gorm:"uniqueIndex;not null"`
	Theme         Theme     `json:"theme" gorm:"not null;default:'system'"`
	Language      Language  `json:"language" gorm:"not null;default:'en'"`
	CategoryOrder IDList    `json:"category_order" gorm:"type:text;not null;default:'[]'"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DefaultPreference is what a lookup for an unknown user returns. It is
// synthesized on the read path and never persisted.
func DefaultPreference(userID string) *UserPreference {
	return &UserPreference{
		UserID:        userID,
		Theme:         ThemeSystem,
		Language:      LanguageEN,
		CategoryOrder: IDList{},
	}
}
