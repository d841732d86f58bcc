package controllers

import (
	"net/http"
	"testing"
	"time"

	"newsroom/internal/mocks"
	"newsroom/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEditorApprove(t *testing.T) {
	editor := &models.User{ID: "editor-1", Role: models.RoleEditor, Category: "cat-politics"}

	t.Run("approves a pending article with schedule and taxonomy", func(t *testing.T) {
		service, articleRepo, _ := newMockedService()
		stored := &models.Article{ID: "a1", Status: models.StatusPending, RejectReason: "old note"}

		articleRepo.On("FindByID", mock.Anything, "a1").Return(stored, nil)
		articleRepo.On("Update", mock.Anything, mock.MatchedBy(func(a *models.Article) bool {
			return a.Status == models.StatusPublished &&
				a.Editor == "editor-1" &&
				a.RejectReason == "" &&
				a.PublishedDate != nil
		})).Return(nil)

		controller := NewEditorController(service, articleRepo, new(mocks.MockCategoryRepository), new(mocks.MockTagRepository), testPageTimeout, zerolog.Nop())
		router := setupTestRouter()
		router.POST("/editor/approve/:id", asUser(editor), controller.Approve)

		w := performJSON(router, http.MethodPost, "/editor/approve/a1", map[string]interface{}{
			"categories":    []string{"cat-politics"},
			"tags":          []string{"tag-1"},
			"schedule_date": "2025-06-01T09:00:00Z",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "success", decodeBody(w)["status"])
		articleRepo.AssertExpectations(t)
	})

	t.Run("rejects an approve on an already published article", func(t *testing.T) {
		service, articleRepo, _ := newMockedService()
		published := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		stored := &models.Article{ID: "a2", Status: models.StatusPublished, PublishedDate: &published}

		articleRepo.On("FindByID", mock.Anything, "a2").Return(stored, nil)

		controller := NewEditorController(service, articleRepo, new(mocks.MockCategoryRepository), new(mocks.MockTagRepository), testPageTimeout, zerolog.Nop())
		router := setupTestRouter()
		router.POST("/editor/approve/:id", asUser(editor), controller.Approve)

		w := performJSON(router, http.MethodPost, "/editor/approve/a2", map[string]interface{}{
			"categories":    []string{"cat-politics"},
			"schedule_date": "2025-06-01T09:00:00Z",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		articleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("requires a schedule date", func(t *testing.T) {
		service, articleRepo, _ := newMockedService()

		controller := NewEditorController(service, articleRepo, new(mocks.MockCategoryRepository), new(mocks.MockTagRepository), testPageTimeout, zerolog.Nop())
		router := setupTestRouter()
		router.POST("/editor/approve/:id", asUser(editor), controller.Approve)

		w := performJSON(router, http.MethodPost, "/editor/approve/a1", map[string]interface{}{
			"categories": []string{"cat-politics"},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects an unparseable schedule date", func(t *testing.T) {
		service, articleRepo, _ := newMockedService()

		controller := NewEditorController(service, articleRepo, new(mocks.MockCategoryRepository), new(mocks.MockTagRepository), testPageTimeout, zerolog.Nop())
		router := setupTestRouter()
		router.POST("/editor/approve/:id", asUser(editor), controller.Approve)

		w := performJSON(router, http.MethodPost, "/editor/approve/a1", map[string]interface{}{
			"categories":    []string{"cat-politics"},
			"schedule_date": "tomorrow-ish",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEditorReject(t *testing.T) {
	editor := &models.User{ID: "editor-1", Role: models.RoleEditor, Category: "cat-politics"}

	t.Run("rejects a pending article with a reason", func(t *testing.T) {
		service, articleRepo, _ := newMockedService()
		stored := &models.Article{ID: "a1", Status: models.StatusPending}

		articleRepo.On("FindByID", mock.Anything, "a1").Return(stored, nil)
		articleRepo.On("Update", mock.Anything, mock.MatchedBy(func(a *models.Article) bool {
			return a.Status == models.StatusRejected && a.RejectReason == "needs a second source"
		})).Return(nil)

		controller := NewEditorController(service, articleRepo, new(mocks.MockCategoryRepository), new(mocks.MockTagRepository), testPageTimeout, zerolog.Nop())
		router := setupTestRouter()
		router.POST("/editor/reject/:id", asUser(editor), controller.Reject)

		w := performJSON(router, http.MethodPost, "/editor/reject/a1", map[string]interface{}{
			"reason": "needs a second source",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		articleRepo.AssertExpectations(t)
	})

	t.Run("reason is mandatory", func(t *testing.T) {
		service, articleRepo, _ := newMockedService()

		controller := NewEditorController(service, articleRepo, new(mocks.MockCategoryRepository), new(mocks.MockTagRepository), testPageTimeout, zerolog.Nop())
		router := setupTestRouter()
		router.POST("/editor/reject/:id", asUser(editor), controller.Reject)

		w := performJSON(router, http.MethodPost, "/editor/reject/a1", map[string]interface{}{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		articleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("rejecting a draft is an invalid transition", func(t *testing.T) {
		service, articleRepo, _ := newMockedService()
		stored := &models.Article{ID: "a3", Status: models.StatusDraft}

		articleRepo.On("FindByID", mock.Anything, "a3").Return(stored, nil)

		controller := NewEditorController(service, articleRepo, new(mocks.MockCategoryRepository), new(mocks.MockTagRepository), testPageTimeout, zerolog.Nop())
		router := setupTestRouter()
		router.POST("/editor/reject/:id", asUser(editor), controller.Reject)

		w := performJSON(router, http.MethodPost, "/editor/reject/a3", map[string]interface{}{
			"reason": "not ready",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		articleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
