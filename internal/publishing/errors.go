package publishing

import "errors"

// Sentinel errors for the article lifecycle and premium gating. Controllers
// map these to HTTP status codes; everything else is treated as an upstream
// failure and surfaced as a generic 500.
var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidTransition    = errors.New("invalid lifecycle transition")
	ErrUnauthenticated      = errors.New("authentication required")
	ErrSubscriptionRequired = errors.New("subscription required")
	ErrSubscriptionExpired  = errors.New("subscription expired")
	ErrForbidden            = errors.New("forbidden")
)
