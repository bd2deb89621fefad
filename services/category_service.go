package services

import (
	"newsbridge-api/models"
	"newsbridge-api/repositories"

	"github.com/rs/zerolog"
)

type CategoryService interface {
	CreateCategory(req models.CreateCategoryRequest) (*models.Category, error)
	GetCategories(params models.ListCategoriesParams) ([]models.Category, error)
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	log          zerolog.Logger
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, log zerolog.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		log:          log.With().Str("component", "category_service").Logger(),
	}
}

func (s *categoryService) CreateCategory(req models.CreateCategoryRequest) (*models.Category, error) {
	sortOrder := 0
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	category := &models.Category{
		Name:        req.Name,
		NameJa:      req.NameJa,
		Slug:        req.Slug,
		Description: req.Description,
		Icon:        req.Icon,
		SortOrder:   sortOrder,
		IsActive:    isActive,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		s.log.Error().Err(err).Str("slug", req.Slug).Msg("failed to create category")
		return nil, err
	}

	return category, nil
}

func (s *categoryService) GetCategories(params models.ListCategoriesParams) ([]models.Category, error) {
	activeOnly := true
	if params.ActiveOnly != nil {
		activeOnly = *params.ActiveOnly
	}

	categories, err := s.categoryRepo.GetAll(activeOnly)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list categories")
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}
