package controllers

import (
	"context"
	"errors"
	"net/http"

	"newsroom/internal/publishing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondError maps the engine's error taxonomy onto HTTP codes. Anything
// unrecognized is an upstream failure: logged by the caller, surfaced as a
// bare 500 without internals.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, publishing.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Not found",
		})
	case errors.Is(err, publishing.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Authentication required",
		})
	case errors.Is(err, publishing.ErrSubscriptionRequired):
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "An active subscription is required for premium content",
		})
	case errors.Is(err, publishing.ErrSubscriptionExpired):
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Subscription has expired",
		})
	case errors.Is(err, publishing.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Forbidden",
		})
	case errors.Is(err, publishing.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Invalid lifecycle transition",
			"error":   err.Error(),
		})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Request timed out",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Internal server error",
		})
	}
}
