package routes

import (
	"newsroom/internal/controllers"
	"newsroom/internal/middleware"
	"newsroom/internal/publishing"

	"github.com/gin-gonic/gin"
)

func RegisterAdminRoutes(router *gin.Engine, adminController *controllers.AdminController, auth gin.HandlerFunc) {
	userAdmin := router.Group("/manage-users")
	userAdmin.Use(auth, middleware.RequireCapability(publishing.CapManageUsers))
	{
		userAdmin.GET("/:tab", adminController.ManageUsers)
		userAdmin.POST("/:tab/ban/:id", adminController.SetBan)
		userAdmin.POST("/:tab/verify/:id", adminController.VerifyEditor)
		userAdmin.POST("/:tab/extend/:id", adminController.ExtendSubscription)
	}

	categoryAdmin := router.Group("/manage-categories")
	categoryAdmin.Use(auth, middleware.RequireCapability(publishing.CapManageTaxonomy))
	{
		categoryAdmin.GET("/", adminController.ListCategories)
		categoryAdmin.POST("/", adminController.CreateCategory)
		categoryAdmin.POST("/edit/:id", adminController.UpdateCategory)
		categoryAdmin.POST("/delete/:id", adminController.DeleteCategory)
	}

	tagAdmin := router.Group("/manage-tags")
	tagAdmin.Use(auth, middleware.RequireCapability(publishing.CapManageTaxonomy))
	{
		tagAdmin.GET("/", adminController.ListTags)
		tagAdmin.POST("/", adminController.CreateTag)
		tagAdmin.POST("/edit/:id", adminController.UpdateTag)
		tagAdmin.POST("/delete/:id", adminController.DeleteTag)
	}

	router.GET("/admin-approve", auth, middleware.RequireCapability(publishing.CapModerateAll), adminController.ApprovalQueue)
}
