package repository

import (
	"context"

	"newsroom/internal/models"

	"gorm.io/gorm"
)

// ArticleFilter selects articles by array containment on the id columns and
// optionally by stored status. Empty fields are ignored.
type ArticleFilter struct {
	Category string
	Tag      string
	Author   string
	Statuses []models.ArticleStatus
}

// ArticleSort picks the secondary ordering of a listing. Every listing is
// premium-first regardless of the sort.
type ArticleSort int

const (
	SortByPublishedDate ArticleSort = iota
	SortByViews
	SortByCreatedAt
)

type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	FindByID(ctx context.Context, id string) (*models.Article, error)
	Update(ctx context.Context, article *models.Article) error
	Patch(ctx context.Context, id string, data map[string]interface{}) error
	Delete(ctx context.Context, id string) error

	Find(ctx context.Context, f ArticleFilter, sort ArticleSort, offset, limit int) ([]models.Article, error)
	Count(ctx context.Context, f ArticleFilter) (int64, error)
	CountByAuthor(ctx context.Context, authorID string) (int64, error)

	Search(ctx context.Context, query string, offset, limit int) ([]models.Article, error)
	CountSearch(ctx context.Context, query string) (int64, error)
	SameCategory(ctx context.Context, category, excludeID string, limit int) ([]models.Article, error)

	IncrementViews(ctx context.Context, id string) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepository) FindByID(ctx context.Context, id string) (*models.Article, error) {
	var article models.Article
	if err := r.db.WithContext(ctx).First(&article, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) Update(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Save(article).Error
}

func (r *articleRepository) Patch(ctx context.Context, id string, data map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Article{}).Where("id = ?", id).Updates(data).Error
}

func (r *articleRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Article{}, "id = ?", id).Error
}

func (r *articleRepository) filtered(ctx context.Context, f ArticleFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Article{})
	if f.Category != "" {
		q = q.Where("? = ANY(category)", f.Category)
	}
	if f.Tag != "" {
		q = q.Where("? = ANY(tags)", f.Tag)
	}
	if f.Author != "" {
		q = q.Where("? = ANY(author)", f.Author)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", f.Statuses)
	}
	return q
}

func (r *articleRepository) Find(ctx context.Context, f ArticleFilter, sort ArticleSort, offset, limit int) ([]models.Article, error) {
	order := "is_premium DESC, published_date DESC NULLS LAST"
	switch sort {
	case SortByViews:
		order = "is_premium DESC, views DESC"
	case SortByCreatedAt:
		order = "is_premium DESC, created_at DESC"
	}

	var articles []models.Article
	err := r.filtered(ctx, f).
		Order(order).
		Offset(offset).
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Count(ctx context.Context, f ArticleFilter) (int64, error) {
	var total int64
	err := r.filtered(ctx, f).Count(&total).Error
	return total, err
}

func (r *articleRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	return r.Count(ctx, ArticleFilter{Author: authorID})
}

// searchVector weights title over abstract over body for ranking.
const searchVector = `setweight(to_tsvector('simple', coalesce(name, '')), 'A') ||
	setweight(to_tsvector('simple', coalesce(abstract, '')), 'B') ||
	setweight(to_tsvector('simple', coalesce(content, '')), 'C')`

func (r *articleRepository) Search(ctx context.Context, query string, offset, limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).Raw(`
		SELECT * FROM articles
		WHERE status = ?
		  AND (`+searchVector+`) @@ plainto_tsquery('simple', ?)
		ORDER BY is_premium DESC,
		         ts_rank(`+searchVector+`, plainto_tsquery('simple', ?)) DESC
		OFFSET ? LIMIT ?`,
		models.StatusPublished, query, query, offset, limit,
	).Scan(&articles).Error
	return articles, err
}

func (r *articleRepository) CountSearch(ctx context.Context, query string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT count(*) FROM articles
		WHERE status = ?
		  AND (`+searchVector+`) @@ plainto_tsquery('simple', ?)`,
		models.StatusPublished, query,
	).Scan(&total).Error
	return total, err
}

func (r *articleRepository) SameCategory(ctx context.Context, category, excludeID string, limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).
		Where("? = ANY(category)", category).
		Where("id <> ?", excludeID).
		Where("status = ?", models.StatusPublished).
		Order("random()").
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) IncrementViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&models.Article{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}
