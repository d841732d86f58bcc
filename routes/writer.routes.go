package routes

import (
	"newsroom/internal/controllers"
	"newsroom/internal/middleware"
	"newsroom/internal/publishing"

	"github.com/gin-gonic/gin"
)

func RegisterWriterRoutes(router *gin.Engine, writerController *controllers.WriterController, auth gin.HandlerFunc) {
	writerRoutes := router.Group("/writer")
	writerRoutes.Use(auth, middleware.RequireCapability(publishing.CapWrite))
	{
		writerRoutes.GET("/", writerController.Dashboard)
		writerRoutes.POST("/create", writerController.Create)
		writerRoutes.POST("/edit/:id", writerController.Edit)
		writerRoutes.POST("/submit/:id", writerController.Submit)
	}
}
