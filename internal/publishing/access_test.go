package publishing

import (
	"testing"
	"time"

	"newsroom/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionExpiresAt(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	u := &models.User{CreatedAt: created, SubscriptionExpiry: 60 * 24 * 30}
	assert.True(t, SubscriptionExpiresAt(u).Equal(created.AddDate(0, 0, 30)))
}

func TestHasActiveSubscription(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	created := now.Add(-24 * time.Hour)

	tests := []struct {
		name     string
		user     models.User
		expected bool
	}{
		{
			name:     "verified with time left",
			user:     models.User{Verified: true, CreatedAt: created, SubscriptionExpiry: 60 * 48},
			expected: true,
		},
		{
			name:     "verified but expired",
			user:     models.User{Verified: true, CreatedAt: created, SubscriptionExpiry: 60},
			expected: false,
		},
		{
			name:     "unverified never has one",
			user:     models.User{Verified: false, CreatedAt: created, SubscriptionExpiry: 60 * 48},
			expected: false,
		},
		{
			name:     "expiring exactly now still counts",
			user:     models.User{Verified: true, CreatedAt: created, SubscriptionExpiry: 60 * 24},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasActiveSubscription(&tt.user, now))
		})
	}
}

func TestCanViewPremium(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	created := now.Add(-24 * time.Hour)
	premium := &models.Article{IsPremium: true}
	free := &models.Article{IsPremium: false}

	activeSubscriber := &models.User{Role: models.RoleSubscriber, Verified: true, CreatedAt: created, SubscriptionExpiry: 60 * 48}
	expiredSubscriber := &models.User{Role: models.RoleSubscriber, Verified: true, CreatedAt: created, SubscriptionExpiry: 60}
	unverifiedSubscriber := &models.User{Role: models.RoleSubscriber, Verified: false, CreatedAt: created, SubscriptionExpiry: 60 * 48}

	tests := []struct {
		name    string
		article *models.Article
		viewer  *models.User
		wantErr error
	}{
		{"free article, anonymous", free, nil, nil},
		{"free article, guest", free, &models.User{Role: models.RoleGuest}, nil},
		{"premium, anonymous", premium, nil, ErrUnauthenticated},
		{"premium, admin", premium, &models.User{Role: models.RoleAdmin}, nil},
		{"premium, active subscriber", premium, activeSubscriber, nil},
		{"premium, expired subscriber", premium, expiredSubscriber, ErrSubscriptionExpired},
		{"premium, unverified subscriber", premium, unverifiedSubscriber, ErrSubscriptionRequired},
		{"premium, guest", premium, &models.User{Role: models.RoleGuest}, ErrSubscriptionRequired},
		{"premium, writer", premium, &models.User{Role: models.RoleWriter}, ErrSubscriptionRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanViewPremium(tt.article, tt.viewer, now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name    string
		user    *models.User
		cap     Capability
		allowed bool
	}{
		{"anonymous denied everything", nil, CapComment, false},
		{"banned denied everything", &models.User{Role: models.RoleAdmin, Ban: true}, CapManageUsers, false},
		{"admin manages users", &models.User{Role: models.RoleAdmin}, CapManageUsers, true},
		{"admin manages taxonomy", &models.User{Role: models.RoleAdmin}, CapManageTaxonomy, true},
		{"admin moderates everywhere", &models.User{Role: models.RoleAdmin}, CapModerateAll, true},
		{"editor cannot manage users", &models.User{Role: models.RoleEditor, Category: "cat-1"}, CapManageUsers, false},
		{"assigned editor moderates", &models.User{Role: models.RoleEditor, Category: "cat-1"}, CapModerate, true},
		{"unassigned editor cannot moderate", &models.User{Role: models.RoleEditor}, CapModerate, false},
		{"admin moderates without assignment", &models.User{Role: models.RoleAdmin}, CapModerate, true},
		{"writer writes", &models.User{Role: models.RoleWriter}, CapWrite, true},
		{"subscriber cannot write", &models.User{Role: models.RoleSubscriber}, CapWrite, false},
		{"guest comments", &models.User{Role: models.RoleGuest}, CapComment, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Authorize(tt.user, tt.cap)
			assert.Equal(t, tt.allowed, d.Allowed)
			if !tt.allowed {
				assert.NotEmpty(t, d.Reason)
			}
		})
	}
}
