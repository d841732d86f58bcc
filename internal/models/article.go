package models

import (
	"time"

	"github.com/lib/pq"
)

type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPending   ArticleStatus = "pending"
	StatusPublished ArticleStatus = "published"
	StatusRejected  ArticleStatus = "rejected"
)

// Article is a single piece of content. Category, Tags and Author hold
// opaque ids; the first category is the primary one. PublishedDate is the
// canonical UTC publish instant, PublishedAt keeps the legacy display
// string for rendering only.
type Article struct {
	ID            string         `gorm:"primaryKey;size:64" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	Image         string         `json:"image"`
	Abstract      string         `json:"abstract"`
	Content       string         `json:"content"`
	Category      pq.StringArray `gorm:"type:text[]" json:"category"`
	Tags          pq.StringArray `gorm:"type:text[]" json:"tags"`
	IsPremium     bool           `gorm:"index" json:"is_premium"`
	Status        ArticleStatus  `gorm:"size:16;index" json:"status"`
	PublishedAt   string         `json:"published_at"`
	PublishedDate *time.Time     `gorm:"index" json:"published_date"`
	Author        pq.StringArray `gorm:"type:text[]" json:"author"`
	Editor        string         `gorm:"size:64" json:"editor"`
	Views         int64          `json:"views"`
	RejectReason  string         `json:"reject_reason,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (a *Article) PrimaryCategory() string {
	if len(a.Category) == 0 {
		return ""
	}
	return a.Category[0]
}
