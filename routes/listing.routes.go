package routes

import (
	"newsroom/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterListingRoutes(router *gin.Engine, listingController *controllers.ListingController) {
	router.GET("/", listingController.Home)
	router.GET("/categories/:category", listingController.Category)
	router.GET("/tags/:tag", listingController.Tag)
	router.GET("/trend", listingController.Trend)
	router.GET("/author/:author", listingController.Author)
	router.GET("/search", listingController.Search)
}
