package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"articlehub/services"

	"github.com/gin-gonic/gin"
)

type CreateArticleRequest struct {
	Title  string `json:"title" binding:"required"`
	Author string `json:"author" binding:"required"`
	Body   string `json:"body" binding:"required"`
}

type ArticleController struct {
	articles    *services.ArticleService
	engagements *services.EngagementService
}

func NewArticleController(articles *services.ArticleService, engagements *services.EngagementService) *ArticleController {
	return &ArticleController{
		articles:    articles,
		engagements: engagements,
	}
}

func (c *ArticleController) CreateArticle(ctx *gin.Context) {
	var req CreateArticleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := c.articles.CreateArticle(req.Title, req.Author, req.Body)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, article)
}

func (c *ArticleController) ListArticles(ctx *gin.Context) {
	list, err := c.articles.ListArticles()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, list)
}

func (c *ArticleController) GetPopularArticles(ctx *gin.Context) {
	list, err := c.engagements.TopArticles(10)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, list)
}

func (c *ArticleController) GetArticleLikes(ctx *gin.Context) {
	articleID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	likes, err := c.articles.GetLikesCount(uint(articleID))
	if err != nil {
		if errors.Is(err, services.ErrArticleNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"likes": likes})
}
