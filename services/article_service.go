package services

import (
	"time"

	"newsbridge-api/models"
	"newsbridge-api/repositories"

	"github.com/rs/zerolog"
)

const (
	homeFeaturedLimit   = 10
	defaultHomeLimit    = 20
	defaultListLimit    = 20
	defaultFeatureLimit = 5
	defaultSearchLimit  = 20
)

type ArticleService interface {
	GetHomePageData(params models.HomePageParams) (*models.HomePageData, error)
	GetArticles(params models.ListArticlesParams) ([]models.Article, error)
	GetFeaturedArticles(params models.FeaturedArticlesParams) ([]models.Article, error)
	SearchArticles(params models.SearchArticlesParams) ([]models.Article, error)
	CreateArticle(req models.CreateArticleRequest) (*models.Article, error)
	UpdateArticle(req models.UpdateArticleRequest) (*models.Article, error)
}

type articleService struct {
	articleRepo  repositories.ArticleRepository
	categoryRepo repositories.CategoryRepository
	log          zerolog.Logger
}

func NewArticleService(articleRepo repositories.ArticleRepository, categoryRepo repositories.CategoryRepository, log zerolog.Logger) ArticleService {
	return &articleService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		log:          log.With().Str("component", "article_service").Logger(),
	}
}

// GetHomePageData runs four independent queries. The featured carousel is
// deliberately not affected by the category filter or the pagination window,
// and the total count ignores featured_only and pagination.
func (s *articleService) GetHomePageData(params models.HomePageParams) (*models.HomePageData, error) {
	if params.Limit == 0 {
		params.Limit = defaultHomeLimit
	}

	featured, err := s.articleRepo.GetFeatured(homeFeaturedLimit, params.Language)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load featured articles")
		return nil, err
	}

	latest, err := s.articleRepo.GetList(models.ListArticlesParams{
		Limit:        params.Limit,
		Offset:       params.Offset,
		CategoryID:   params.CategoryID,
		Language:     params.Language,
		FeaturedOnly: params.FeaturedOnly,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load latest articles")
		return nil, err
	}

	categories, err := s.categoryRepo.GetAll(true)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load categories")
		return nil, err
	}

	total, err := s.articleRepo.Count(params.CategoryID, params.Language)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to count articles")
		return nil, err
	}

	if featured == nil {
		featured = []models.Article{}
	}
	if latest == nil {
		latest = []models.Article{}
	}
	if categories == nil {
		categories = []models.Category{}
	}

	return &models.HomePageData{
		FeaturedArticles: featured,
		LatestArticles:   latest,
		Categories:       categories,
		TotalCount:       total,
	}, nil
}

func (s *articleService) GetArticles(params models.ListArticlesParams) ([]models.Article, error) {
	if params.Limit == 0 {
		params.Limit = defaultListLimit
	}
	articles, err := s.articleRepo.GetList(params)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list articles")
		return nil, err
	}
	if articles == nil {
		articles = []models.Article{}
	}
	return articles, nil
}

func (s *articleService) GetFeaturedArticles(params models.FeaturedArticlesParams) ([]models.Article, error) {
	if params.Limit == 0 {
		params.Limit = defaultFeatureLimit
	}
	articles, err := s.articleRepo.GetFeatured(params.Limit, params.Language)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load featured articles")
		return nil, err
	}
	if articles == nil {
		articles = []models.Article{}
	}
	return articles, nil
}

func (s *articleService) SearchArticles(params models.SearchArticlesParams) ([]models.Article, error) {
	if params.Limit == 0 {
		params.Limit = defaultSearchLimit
	}
	articles, err := s.articleRepo.Search(params)
	if err != nil {
		s.log.Error().Err(err).Str("query", params.Query).Msg("article search failed")
		return nil, err
	}
	if articles == nil {
		articles = []models.Article{}
	}
	return articles, nil
}

func (s *articleService) CreateArticle(req models.CreateArticleRequest) (*models.Article, error) {
	language := req.Language
	if language == "" {
		language = models.LanguageEN
	}

	publishedAt := req.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = time.Now()
	}

	tags := models.TagList(req.Tags)
	if tags == nil {
		tags = models.TagList{}
	}

	article := &models.Article{
		Title:        req.Title,
		Description:  req.Description,
		Content:      req.Content,
		ThumbnailURL: req.ThumbnailURL,
		URL:          req.URL,
		Author:       req.Author,
		SourceName:   req.SourceName,
		Score:        req.Score,
		CommentCount: req.CommentCount,
		PublishedAt:  publishedAt,
		IsFeatured:   req.IsFeatured,
		CategoryID:   req.CategoryID,
		Language:     language,
		Tags:         tags,
	}

	if err := s.articleRepo.Create(article); err != nil {
		s.log.Error().Err(err).Str("title", req.Title).Msg("failed to create article")
		return nil, err
	}

	return s.articleRepo.GetByID(article.ID)
}

func (s *articleService) UpdateArticle(req models.UpdateArticleRequest) (*models.Article, error) {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.ThumbnailURL != nil {
		fields["thumbnail_url"] = *req.ThumbnailURL
	}
	if req.URL != nil {
		fields["url"] = *req.URL
	}
	if req.Author != nil {
		fields["author"] = *req.Author
	}
	if req.SourceName != nil {
		fields["source_name"] = *req.SourceName
	}
	if req.Score != nil {
		fields["score"] = *req.Score
	}
	if req.CommentCount != nil {
		fields["comment_count"] = *req.CommentCount
	}
	if req.PublishedAt != nil {
		fields["published_at"] = *req.PublishedAt
	}
	if req.IsFeatured != nil {
		fields["is_featured"] = *req.IsFeatured
	}
	if req.CategoryID != nil {
		fields["category_id"] = *req.CategoryID
	}
	if req.Language != nil {
		fields["language"] = *req.Language
	}
	if req.Tags != nil {
		fields["tags"] = models.TagList(*req.Tags)
	}

	// updated_at is refreshed even when no other field changed
	fields["updated_at"] = time.Now()

	if err := s.articleRepo.Update(req.ID, fields); err != nil {
		s.log.Error().Err(err).Uint("article_id", req.ID).Msg("failed to update article")
		return nil, err
	}

	return s.articleRepo.GetByID(req.ID)
}
