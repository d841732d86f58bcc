package models

import "time"

// Comment is append-only; there is no edit or delete path.
type Comment struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	ArticleID string    `gorm:"size:64;index;not null" json:"article_id"`
	UserID    string    `gorm:"size:64;not null" json:"user_id"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
