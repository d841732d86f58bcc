package models

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleEditor     Role = "editor"
	RoleWriter     Role = "writer"
	RoleSubscriber Role = "subscriber"
	RoleGuest      Role = "guest"
)

// User covers every account type. SubscriptionExpiry is a minute count
// offset from CreatedAt, not an absolute date; resolve it through
// publishing.SubscriptionExpiresAt instead of recomputing it inline.
// Category is the single category an editor moderates.
type User struct {
	ID                 string    `gorm:"primaryKey;size:64" json:"id"`
	Name               string    `gorm:"not null;index" json:"name"`
	FullName           string    `json:"full_name"`
	PenName            string    `json:"pen_name"`
	Role               Role      `gorm:"size:16;index" json:"role"`
	Email              string    `gorm:"unique;not null" json:"email"`
	Password           string    `json:"-"`
	Ban                bool      `gorm:"default:false" json:"ban"`
	DOB                time.Time `json:"dob"`
	SubscriptionExpiry int64     `json:"subscription_expiry"`
	Category           string    `gorm:"size:64" json:"category"`
	Verified           bool      `gorm:"default:false" json:"verified"`
	Gender             string    `json:"gender"`
	Country            string    `json:"country"`
	Phone              string    `json:"phone"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
