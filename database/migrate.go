package database

import (
	"newsroom/internal/models"

	"gorm.io/gorm"
)

// Migrate runs the schema migrations plus the full-text index the search
// queries depend on.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Article{},
		&models.Category{},
		&models.Tag{},
		&models.Comment{},
		&models.ResetPassword{},
	); err != nil {
		return err
	}

	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_articles_fulltext ON articles
		USING GIN ((
			setweight(to_tsvector('simple', coalesce(name, '')), 'A') ||
			setweight(to_tsvector('simple', coalesce(abstract, '')), 'B') ||
			setweight(to_tsvector('simple', coalesce(content, '')), 'C')
		))`).Error
}
