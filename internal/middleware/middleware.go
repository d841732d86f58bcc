package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"newsroom/internal/metrics"
	"newsroom/internal/models"
	"newsroom/internal/publishing"
	"newsroom/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userContextKey = "current_user"

// CurrentUser returns the authenticated user set by Authenticate or
// MaybeAuthenticate, or nil for an anonymous visitor.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

func parseToken(c *gin.Context, secret string) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("missing authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", fmt.Errorf("invalid authorization header format")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token claims")
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", fmt.Errorf("token missing user_id")
	}
	return userID, nil
}

// Authenticate requires a valid bearer token and loads the account behind
// it. Banned accounts are rejected outright.
func Authenticate(users repository.UserRepository, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := parseToken(c, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or missing token",
				"error":   err.Error(),
			})
			c.Abort()
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Unknown account",
				"error":   "No user behind this token",
			})
			c.Abort()
			return
		}
		if user.Ban {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Account is banned",
			})
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// MaybeAuthenticate resolves the viewer when a token is present but lets
// anonymous requests straight through. Public pages use it so premium
// gating can see who is asking.
func MaybeAuthenticate(users repository.UserRepository, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := parseToken(c, secret)
		if err == nil {
			if user, err := users.FindByID(c.Request.Context(), userID); err == nil && !user.Ban {
				c.Set(userContextKey, user)
			}
		}
		c.Next()
	}
}

// RequireCapability gates a route group on the consolidated capability
// check; it must run after Authenticate.
func RequireCapability(cap publishing.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := publishing.Authorize(CurrentUser(c), cap)
		if !decision.Allowed {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Forbidden",
				"error":   decision.Reason,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// Metrics counts every request by method, route pattern and status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RequestsTotal.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Inc()
	}
}
