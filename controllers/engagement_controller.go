package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"articlehub/services"

	"github.com/gin-gonic/gin"
)

type EngagementRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type EngagementController struct {
	engagements *services.EngagementService
}

func NewEngagementController(engagements *services.EngagementService) *EngagementController {
	return &EngagementController{engagements: engagements}
}

func (c *EngagementController) LikeArticle(ctx *gin.Context) {
	c.record(ctx, services.KindLike)
}

func (c *EngagementController) ViewArticle(ctx *gin.Context) {
	c.record(ctx, services.KindView)
}

func (c *EngagementController) record(ctx *gin.Context, kind services.Kind) {
	articleID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	var req EngagementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := c.engagements.RecordEngagement(uint(articleID), req.UserID, kind)
	if err != nil {
		if errors.Is(err, services.ErrArticleNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": message})
}
