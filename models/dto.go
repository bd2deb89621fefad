package models

import "time"

type RegisterRequest struct {
	Username string   `json:"username" validate:"required,min=3,max=50"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=6"`
	Role     UserRole `json:"role,omitempty" validate:"omitempty,oneof=editor admin"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type HomePageParams struct {
	Limit        int      `json:"limit" validate:"omitempty,min=1,max=50"`
	Offset       int      `json:"offset" validate:"omitempty,min=0"`
	CategoryID   *uint    `json:"category_id" validate:"omitempty,min=1"`
	Language     Language `json:"language" validate:"omitempty,oneof=en ja"`
	FeaturedOnly bool     `json:"featured_only"`
}

type HomePageData struct {
	FeaturedArticles []Article  `json:"featured_articles"`
	LatestArticles   []Article  `json:"latest_articles"`
	Categories       []Category `json:"categories"`
	TotalCount       int64      `json:"total_count"`
}

type ListArticlesParams struct {
	Limit        int      `json:"limit" validate:"omitempty,min=1,max=100"`
	Offset       int      `json:"offset" validate:"omitempty,min=0"`
	CategoryID   *uint    `json:"category_id" validate:"omitempty,min=1"`
	Language     Language `json:"language" validate:"omitempty,oneof=en ja"`
	FeaturedOnly bool     `json:"featured_only"`
}

type FeaturedArticlesParams struct {
	Limit    int      `json:"limit" validate:"omitempty,min=1,max=20"`
	Language Language `json:"language" validate:"omitempty,oneof=en ja"`
}

type SearchArticlesParams struct {
	Query      string   `json:"query" validate:"required,min=1,max=255"`
	CategoryID *uint    `json:"category_id" validate:"omitempty,min=1"`
	Language   Language `json:"language" validate:"omitempty,oneof=en ja"`
	Limit      int      `json:"limit" validate:"omitempty,min=1,max=100"`
	Offset     int      `json:"offset" validate:"omitempty,min=0"`
}

type ListCategoriesParams struct {
	ActiveOnly *bool `json:"active_only"`
}

type CreateArticleRequest struct {
	Title        string    `json:"title" validate:"required,min=1,max=255"`
	Description  *string   `json:"description" validate:"omitempty,max=2000"`
	Content      *string   `json:"content"`
	ThumbnailURL *string   `json:"thumbnail_url" validate:"omitempty,url"`
	URL          string    `json:"url" validate:"required,url"`
	Author       *string   `json:"author" validate:"omitempty,max=255"`
	SourceName   string    `json:"source_name" validate:"required,min=1,max=255"`
	Score        int       `json:"score" validate:"min=0"`
	CommentCount int       `json:"comment_count" validate:"min=0"`
	PublishedAt  time.Time `json:"published_at"`
	IsFeatured   bool      `json:"is_featured"`
	CategoryID   *uint     `json:"category_id" validate:"omitempty,min=1"`
	Language     Language  `json:"language" validate:"omitempty,oneof=en ja"`
	Tags         []string  `json:"tags" validate:"omitempty,max=20,dive,min=1,max=50"`
}

type UpdateArticleRequest struct {
	ID           uint       `json:"id" validate:"required,min=1"`
	Title        *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Description  *string    `json:"description" validate:"omitempty,max=2000"`
	Content      *string    `json:"content"`
	ThumbnailURL *string    `json:"thumbnail_url" validate:"omitempty,url"`
	URL          *string    `json:"url" validate:"omitempty,url"`
	Author       *string    `json:"author" validate:"omitempty,max=255"`
	SourceName   *string    `json:"source_name" validate:"omitempty,min=1,max=255"`
	Score        *int       `json:"score" validate:"omitempty,min=0"`
	CommentCount *int       `json:"comment_count" validate:"omitempty,min=0"`
	PublishedAt  *time.Time `json:"published_at"`
	IsFeatured   *bool      `json:"is_featured"`
	CategoryID   *uint      `json:"category_id" validate:"omitempty,min=1"`
	Language     *Language  `json:"language" validate:"omitempty,oneof=en ja"`
	Tags         *[]string  `json:"tags" validate:"omitempty,max=20,dive,min=1,max=50"`
}

type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	NameJa      *string `json:"name_ja" validate:"omitempty,min=1,max=100"`
	Slug        string  `json:"slug" validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Icon        *string `json:"icon" validate:"omitempty,max=100"`
	SortOrder   *int    `json:"sort_order"`
	IsActive    *bool   `json:"is_active"`
}

type GetPreferencesParams struct {
	UserID string `json:"user_id" validate:"required,min=1,max=255"`
}

type UpdatePreferencesRequest struct {
	UserID        string    `json:"user_id" validate:"required,min=1,max=255"`
	Theme         *Theme    `json:"theme" validate:"omitempty,oneof=light dark system"`
	Language      *Language `json:"language" validate:"omitempty,oneof=en ja"`
	CategoryOrder *[]uint   `json:"category_order"`
}
