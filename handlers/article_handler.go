package handlers

import (
	"newsbridge-api/helper"
	"newsbridge-api/models"
	"newsbridge-api/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, h *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: h}
}

func (h *ArticleHandler) GetHomePageData(c *gin.Context) {
	var params models.HomePageParams
	if !h.Helper.BindAndValidate(c, &params) {
		return
	}

	data, err := h.articleService.GetHomePageData(params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", data)
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var params models.ListArticlesParams
	if !h.Helper.BindAndValidate(c, &params) {
		return
	}

	articles, err := h.articleService.GetArticles(params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{"articles": articles})
}

func (h *ArticleHandler) GetFeaturedArticles(c *gin.Context) {
	var params models.FeaturedArticlesParams
	if !h.Helper.BindAndValidate(c, &params) {
		return
	}

	articles, err := h.articleService.GetFeaturedArticles(params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{"articles": articles})
}

func (h *ArticleHandler) SearchArticles(c *gin.Context) {
	var params models.SearchArticlesParams
	if !h.Helper.BindAndValidate(c, &params) {
		return
	}

	articles, err := h.articleService.SearchArticles(params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{"articles": articles})
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.CreateArticleRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	article, err := h.articleService.CreateArticle(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article created successfully", article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	var req models.UpdateArticleRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	article, err := h.articleService.UpdateArticle(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article updated successfully", article)
}
