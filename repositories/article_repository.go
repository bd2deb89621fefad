package repositories

import (
	"errors"
	"strings"

	"newsbridge-api/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetList(params models.ListArticlesParams) ([]models.Article, error)
	GetFeatured(limit int, language models.Language) ([]models.Article, error)
	Search(params models.SearchArticlesParams) ([]models.Article, error)
	Count(categoryID *uint, language models.Language) (int64, error)
	Update(id uint, fields map[string]interface{}) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Category").First(&article, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrArticleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) GetList(params models.ListArticlesParams) ([]models.Article, error) {
	var articles []models.Article

	query := r.db.Model(&models.Article{}).Preload("Category")
	query = applyArticleFilters(query, params.CategoryID, params.Language)
	if params.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}

	err := query.Order("published_at desc").
		Limit(params.Limit).
		Offset(params.Offset).
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) GetFeatured(limit int, language models.Language) ([]models.Article, error) {
	var articles []models.Article

	query := r.db.Model(&models.Article{}).Preload("Category").
		Where("is_featured = ?", true)
	if language != "" {
		query = query.Where("language = ?", language)
	}

	err := query.Order("score desc, published_at desc").
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Search(params models.SearchArticlesParams) ([]models.Article, error) {
	var articles []models.Article

	// Substring match over title, description, content and the serialized tag
	// list; a tag hit counts the same as a title hit. Ordering is recency only.
	pattern := "%" + strings.ToLower(params.Query) + "%"
	query := r.db.Model(&models.Article{}).Preload("Category").
		Where(
			"LOWER(title) LIKE ? OR LOWER(COALESCE(description, '')) LIKE ? OR LOWER(COALESCE(content, '')) LIKE ? OR LOWER(tags) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	query = applyArticleFilters(query, params.CategoryID, params.Language)

	err := query.Order("published_at desc").
		Limit(params.Limit).
		Offset(params.Offset).
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Count(categoryID *uint, language models.Language) (int64, error) {
	var total int64
	query := applyArticleFilters(r.db.Model(&models.Article{}), categoryID, language)
	err := query.Count(&total).Error
	return total, err
}

func (r *articleRepository) Update(id uint, fields map[string]interface{}) error {
	result := r.db.Model(&models.Article{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrArticleNotFound
	}
	return nil
}

func applyArticleFilters(query *gorm.DB, categoryID *uint, language models.Language) *gorm.DB {
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if language != "" {
		query = query.Where("language = ?", language)
	}
	return query
}
