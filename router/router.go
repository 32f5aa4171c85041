package router

import (
	"articlehub/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(
	articles *controllers.ArticleController,
	engagements *controllers.EngagementController,
	notifications *controllers.NotificationController,
) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.POST("/articles", articles.CreateArticle)
	r.GET("/articles", articles.ListArticles)
	r.GET("/articles/popular", articles.GetPopularArticles)
	r.GET("/articles/:id/likes", articles.GetArticleLikes)
	r.POST("/articles/:id/like", engagements.LikeArticle)
	r.POST("/articles/:id/view", engagements.ViewArticle)
	r.GET("/notifications/:userId", notifications.ListNotifications)

	return r
}
