package routes

import (
	"newsroom/internal/controllers"
	"newsroom/internal/middleware"
	"newsroom/internal/publishing"

	"github.com/gin-gonic/gin"
)

func RegisterEditorRoutes(router *gin.Engine, editorController *controllers.EditorController, auth gin.HandlerFunc) {
	editorRoutes := router.Group("/editor")
	editorRoutes.Use(auth, middleware.RequireCapability(publishing.CapModerate))
	{
		editorRoutes.GET("/", editorController.Queue)
		editorRoutes.GET("/article/:id", editorController.Review)
		editorRoutes.POST("/approve/:id", editorController.Approve)
		editorRoutes.POST("/reject/:id", editorController.Reject)
	}
}
