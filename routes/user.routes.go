package routes

import (
	"newsroom/internal/controllers"
	"newsroom/internal/middleware"
	"newsroom/internal/publishing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController, auth gin.HandlerFunc) {
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", userController.Register)
		authRoutes.POST("/login", userController.Login)
		authRoutes.POST("/google", userController.GoogleAuth)
		authRoutes.POST("/forgot-password", userController.ForgotPassword)
		authRoutes.POST("/reset-password", userController.ResetPassword)
	}

	meRoutes := router.Group("/auth")
	meRoutes.Use(auth)
	{
		meRoutes.GET("/me", userController.Me)
		meRoutes.PUT("/me", userController.UpdateMe)
	}

	apiRoutes := router.Group("/api/users")
	apiRoutes.Use(cors.Default())
	apiRoutes.Use(auth, middleware.RequireCapability(publishing.CapManageUsers))
	{
		apiRoutes.POST("/", userController.Register)
		apiRoutes.GET("/:id", userController.GetUser)
		apiRoutes.PUT("/:id", userController.UpdateUser)
		apiRoutes.DELETE("/:id", userController.DeleteUser)
	}
}
