package models

import "errors"

var (
	ErrArticleNotFound    = errors.New("article not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrSlugTaken          = errors.New("category slug already exists")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
