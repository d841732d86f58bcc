package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"time"

	"newsroom/internal/mocks"
	"newsroom/internal/models"
	"newsroom/internal/publishing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const testPageTimeout = 5 * time.Second

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// asUser injects an authenticated user the way the auth middleware would.
func asUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("current_user", user)
		c.Next()
	}
}

func newMockedService() (*publishing.Service, *mocks.MockArticleRepository, *mocks.MockUserRepository) {
	articleRepo := new(mocks.MockArticleRepository)
	userRepo := new(mocks.MockUserRepository)
	return publishing.NewService(articleRepo, userRepo, zerolog.Nop()), articleRepo, userRepo
}

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return body
}
