package controllers

import (
	"net/http"
	"testing"

	"newsroom/internal/mocks"
	"newsroom/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupAdminController() (*AdminController, *mocks.MockUserRepository) {
	service, _, _ := newMockedService()
	userRepo := new(mocks.MockUserRepository)
	controller := NewAdminController(service, userRepo, new(mocks.MockCategoryRepository), new(mocks.MockTagRepository), zerolog.Nop())
	return controller, userRepo
}

func TestVerifyEditor(t *testing.T) {
	t.Run("marks an editor verified with a category", func(t *testing.T) {
		controller, userRepo := setupAdminController()
		userRepo.On("FindByID", mock.Anything, "e1").
			Return(&models.User{ID: "e1", Role: models.RoleEditor}, nil)
		userRepo.On("Patch", mock.Anything, "e1", map[string]interface{}{
			"verified": true,
			"category": "cat-politics",
		}).Return(nil)

		router := setupTestRouter()
		router.POST("/manage-users/:tab/verify/:id", controller.VerifyEditor)

		w := performJSON(router, http.MethodPost, "/manage-users/verify-editors/verify/e1", map[string]interface{}{
			"category": "cat-politics",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		userRepo.AssertExpectations(t)
	})

	t.Run("refuses to verify a non-editor", func(t *testing.T) {
		controller, userRepo := setupAdminController()
		userRepo.On("FindByID", mock.Anything, "w1").
			Return(&models.User{ID: "w1", Role: models.RoleWriter}, nil)

		router := setupTestRouter()
		router.POST("/manage-users/:tab/verify/:id", controller.VerifyEditor)

		w := performJSON(router, http.MethodPost, "/manage-users/verify-editors/verify/w1", map[string]interface{}{
			"category": "cat-politics",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		userRepo.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestExtendSubscription(t *testing.T) {
	t.Run("adds minutes to the stored offset", func(t *testing.T) {
		controller, userRepo := setupAdminController()
		userRepo.On("FindByID", mock.Anything, "s1").
			Return(&models.User{ID: "s1", Role: models.RoleSubscriber, SubscriptionExpiry: 1000}, nil)
		userRepo.On("Patch", mock.Anything, "s1", map[string]interface{}{
			"subscription_expiry": int64(1000 + 10080),
		}).Return(nil)

		router := setupTestRouter()
		router.POST("/manage-users/:tab/extend/:id", controller.ExtendSubscription)

		w := performJSON(router, http.MethodPost, "/manage-users/extend-subscription/extend/s1", map[string]interface{}{
			"minutes": 10080,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		userRepo.AssertExpectations(t)
	})

	t.Run("only subscribers can be extended", func(t *testing.T) {
		controller, userRepo := setupAdminController()
		userRepo.On("FindByID", mock.Anything, "g1").
			Return(&models.User{ID: "g1", Role: models.RoleGuest}, nil)

		router := setupTestRouter()
		router.POST("/manage-users/:tab/extend/:id", controller.ExtendSubscription)

		w := performJSON(router, http.MethodPost, "/manage-users/extend-subscription/extend/g1", map[string]interface{}{
			"minutes": 10080,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		userRepo.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("negative minutes are rejected by validation", func(t *testing.T) {
		controller, userRepo := setupAdminController()

		router := setupTestRouter()
		router.POST("/manage-users/:tab/extend/:id", controller.ExtendSubscription)

		w := performJSON(router, http.MethodPost, "/manage-users/extend-subscription/extend/s1", map[string]interface{}{
			"minutes": -60,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		userRepo.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestManageUsersTabs(t *testing.T) {
	tests := []struct {
		tab          string
		expectedRole models.Role
	}{
		{"ban-users", ""},
		{"verify-editors", models.RoleEditor},
		{"extend-subscription", models.RoleSubscriber},
	}

	for _, tt := range tests {
		t.Run(tt.tab, func(t *testing.T) {
			controller, userRepo := setupAdminController()
			userRepo.On("Count", mock.Anything, tt.expectedRole, "").Return(int64(0), nil)
			userRepo.On("Find", mock.Anything, tt.expectedRole, "", 0, 12).Return([]models.User{}, nil)

			router := setupTestRouter()
			router.GET("/manage-users/:tab", controller.ManageUsers)

			w := performJSON(router, http.MethodGet, "/manage-users/"+tt.tab, nil)
			assert.Equal(t, http.StatusOK, w.Code)
			userRepo.AssertExpectations(t)
		})
	}
}
