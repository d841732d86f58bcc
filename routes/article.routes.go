package routes

import (
	"newsroom/internal/controllers"
	"newsroom/internal/middleware"
	"newsroom/internal/publishing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func RegisterArticleRoutes(router *gin.Engine, articleController *controllers.ArticleController, commentController *controllers.CommentController, auth, maybeAuth gin.HandlerFunc) {
	articleRoutes := router.Group("/article")
	articleRoutes.Use(maybeAuth)
	{
		articleRoutes.GET("/:id", articleController.Show)
		articleRoutes.GET("/:id/comments", commentController.List)
	}
	router.POST("/article/:id/comments", auth, commentController.Create)

	// REST mirror used by the import tooling and admin frontends.
	apiRoutes := router.Group("/api/articles")
	apiRoutes.Use(cors.Default())
	apiRoutes.Use(auth, middleware.RequireCapability(publishing.CapModerateAll))
	{
		apiRoutes.GET("/", articleController.List)
		apiRoutes.GET("/:id", articleController.Get)
		apiRoutes.POST("/", articleController.Create)
		apiRoutes.PUT("/:id", articleController.Update)
		apiRoutes.DELETE("/:id", articleController.Delete)
	}
}
