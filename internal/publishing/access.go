package publishing

import (
	"time"

	"newsroom/internal/models"
)

// SubscriptionExpiresAt resolves the stored minute offset into an absolute
// expiry instant. Call sites must never recompute this inline.
func SubscriptionExpiresAt(u *models.User) time.Time {
	return u.CreatedAt.Add(time.Duration(u.SubscriptionExpiry) * time.Minute)
}

// HasActiveSubscription reports whether a user holds a usable subscription
// at the given instant. Unverified subscribers never do.
func HasActiveSubscription(u *models.User, now time.Time) bool {
	return u.Verified && !SubscriptionExpiresAt(u).Before(now)
}

// CanViewPremium decides full access to an article's content. It returns
// nil when allowed and a distinct sentinel per denial branch so the boundary
// can render the right message and status code.
func CanViewPremium(a *models.Article, viewer *models.User, now time.Time) error {
	if !a.IsPremium {
		return nil
	}
	if viewer == nil {
		return ErrUnauthenticated
	}

	switch viewer.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleSubscriber:
		if !viewer.Verified {
			return ErrSubscriptionRequired
		}
		if SubscriptionExpiresAt(viewer).Before(now) {
			return ErrSubscriptionExpired
		}
		return nil
	default:
		return ErrSubscriptionRequired
	}
}

// Capability names a gated action. Role checks live here instead of being
// duplicated per route handler.
type Capability string

const (
	CapManageUsers    Capability = "manage-users"
	CapManageTaxonomy Capability = "manage-taxonomy"
	CapModerate       Capability = "moderate"
	CapModerateAll    Capability = "moderate-all"
	CapWrite          Capability = "write"
	CapComment        Capability = "comment"
)

// Decision is the structured outcome of a capability check.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

func allow() Decision        { return Decision{Allowed: true} }
func deny(r string) Decision { return Decision{Allowed: false, Reason: r} }

// Authorize evaluates a capability for a user. A nil user is an anonymous
// visitor; banned users are denied everything.
func Authorize(u *models.User, cap Capability) Decision {
	if u == nil {
		return deny("authentication required")
	}
	if u.Ban {
		return deny("account is banned")
	}

	switch cap {
	case CapManageUsers, CapManageTaxonomy, CapModerateAll:
		if u.Role == models.RoleAdmin {
			return allow()
		}
		return deny("admin role required")
	case CapModerate:
		if u.Role == models.RoleAdmin {
			return allow()
		}
		if u.Role != models.RoleEditor {
			return deny("editor role required")
		}
		if u.Category == "" {
			return deny("no category assigned")
		}
		return allow()
	case CapWrite:
		if u.Role == models.RoleWriter || u.Role == models.RoleAdmin {
			return allow()
		}
		return deny("writer role required")
	case CapComment:
		return allow()
	default:
		return deny("unknown capability")
	}
}
