package models

import (
	"time"
)

type Category struct {
	ID          uint    `json:"id" gorm:"primarykey"`
	Name        string  `json:"name" gorm:"not null"`
	NameJa      *string `json:"name_ja"`
	Slug        string  `json:"slug" gorm:"uniqueIndex;not null"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	SortOrder   int     `json:"sort_order" gorm:"default:0"`
	// No gorm default tag: gorm skips zero-valued fields that carry one, which
	// would turn an explicit is_active=false into the column default TRUE. The
	// service always sets the field, the DB default covers raw SQL inserts.
	IsActive  bool      `json:"is_active" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
