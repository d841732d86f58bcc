package controllers

import (
	"net/http"
	"testing"

	"newsroom/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWriterCreate(t *testing.T) {
	writer := &models.User{ID: "w1", Role: models.RoleWriter}

	t.Run("creates a draft attributed to the caller", func(t *testing.T) {
		service, articleRepo, _ := newMockedService()
		articleRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Article) bool {
			return a.Status == models.StatusDraft && len(a.Author) == 1 && a.Author[0] == "w1"
		})).Return(nil)

		controller := NewWriterController(service, articleRepo, zerolog.Nop())
		router := setupTestRouter()
		router.POST("/writer/create", asUser(writer), controller.Create)

		w := performJSON(router, http.MethodPost, "/writer/create", map[string]interface{}{
			"name":     "Draft headline",
			"abstract": "a",
			"content":  "body",
			"category": []string{"c1"},
			"tags":     []string{"t1"},
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		articleRepo.AssertExpectations(t)
	})

	t.Run("submit flag queues the draft for review", func(t *testing.T) {
		service, articleRepo, _ := newMockedService()
		articleRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Article) bool {
			return a.Status == models.StatusPending
		})).Return(nil)

		controller := NewWriterController(service, articleRepo, zerolog.Nop())
		router := setupTestRouter()
		router.POST("/writer/create", asUser(writer), controller.Create)

		w := performJSON(router, http.MethodPost, "/writer/create", map[string]interface{}{
			"name":     "Draft headline",
			"abstract": "a",
			"content":  "body",
			"category": []string{"c1"},
			"tags":     []string{"t1"},
			"submit":   true,
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		articleRepo.AssertExpectations(t)
	})
}

func TestWriterEdit(t *testing.T) {
	writer := &models.User{ID: "w1", Role: models.RoleWriter}

	t.Run("editing a rejected article resubmits it and clears the reason", func(t *testing.T) {
		service, articleRepo, _ := newMockedService()
		stored := &models.Article{
			ID: "a1", Status: models.StatusRejected, RejectReason: "too thin",
			Author: []string{"w1"},
		}

		articleRepo.On("FindByID", mock.Anything, "a1").Return(stored, nil)
		articleRepo.On("Update", mock.Anything, mock.MatchedBy(func(a *models.Article) bool {
			return a.Status == models.StatusDraft && a.RejectReason == "" && a.Name == "Rewritten"
		})).Return(nil)

		controller := NewWriterController(service, articleRepo, zerolog.Nop())
		router := setupTestRouter()
		router.POST("/writer/edit/:id", asUser(writer), controller.Edit)

		w := performJSON(router, http.MethodPost, "/writer/edit/a1", map[string]interface{}{
			"name":     "Rewritten",
			"abstract": "a",
			"content":  "body",
			"category": []string{"c1"},
			"tags":     []string{"t1"},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		articleRepo.AssertExpectations(t)
	})

	t.Run("someone else's article is forbidden", func(t *testing.T) {
		service, articleRepo, _ := newMockedService()
		stored := &models.Article{ID: "a1", Status: models.StatusDraft, Author: []string{"other"}}

		articleRepo.On("FindByID", mock.Anything, "a1").Return(stored, nil)

		controller := NewWriterController(service, articleRepo, zerolog.Nop())
		router := setupTestRouter()
		router.POST("/writer/edit/:id", asUser(writer), controller.Edit)

		w := performJSON(router, http.MethodPost, "/writer/edit/a1", map[string]interface{}{
			"name":     "Hijack",
			"abstract": "a",
			"content":  "body",
			"category": []string{"c1"},
			"tags":     []string{"t1"},
		})

		assert.Equal(t, http.StatusForbidden, w.Code)
		articleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestWriterSubmit(t *testing.T) {
	writer := &models.User{ID: "w1", Role: models.RoleWriter}

	t.Run("submits a draft", func(t *testing.T) {
		service, articleRepo, _ := newMockedService()
		stored := &models.Article{ID: "a1", Status: models.StatusDraft, Author: []string{"w1"}}

		articleRepo.On("FindByID", mock.Anything, "a1").Return(stored, nil)
		articleRepo.On("Update", mock.Anything, mock.MatchedBy(func(a *models.Article) bool {
			return a.Status == models.StatusPending
		})).Return(nil)

		controller := NewWriterController(service, articleRepo, zerolog.Nop())
		router := setupTestRouter()
		router.POST("/writer/submit/:id", asUser(writer), controller.Submit)

		w := performJSON(router, http.MethodPost, "/writer/submit/a1", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		articleRepo.AssertExpectations(t)
	})

	t.Run("submitting a pending article is an invalid transition", func(t *testing.T) {
		service, articleRepo, _ := newMockedService()
		stored := &models.Article{ID: "a1", Status: models.StatusPending, Author: []string{"w1"}}

		articleRepo.On("FindByID", mock.Anything, "a1").Return(stored, nil)

		controller := NewWriterController(service, articleRepo, zerolog.Nop())
		router := setupTestRouter()
		router.POST("/writer/submit/:id", asUser(writer), controller.Submit)

		w := performJSON(router, http.MethodPost, "/writer/submit/a1", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
		articleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
