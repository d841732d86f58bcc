package publishing

import (
	"context"
	"errors"
	"math"
	"time"

	"newsroom/internal/models"
	"newsroom/internal/repository"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const DefaultPageSize = 12

// Pagination mirrors the shape every listing page renders.
type Pagination struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
}

// Listing is a filtered, sorted, paginated slice of articles plus its
// pagination summary.
type Listing struct {
	Articles   []models.Article `json:"articles"`
	Pagination Pagination       `json:"pagination"`
}

// ListRequest describes one listing query. Exactly the containment fields
// that are set are applied. StatusFilter "" means any stored status.
type ListRequest struct {
	Category     string
	Tag          string
	Author       string
	StatusFilter models.ArticleStatus
	Page         int
	PageSize     int
	Sort         repository.ArticleSort
}

// Service is the publication and visibility engine: it owns listing
// queries, the effective-visibility pass, search, trending, view counting
// and author attribution.
type Service struct {
	articles repository.ArticleRepository
	users    repository.UserRepository
	log      zerolog.Logger
	now      func() time.Time
}

func NewService(articles repository.ArticleRepository, users repository.UserRepository, log zerolog.Logger) *Service {
	return &Service{
		articles: articles,
		users:    users,
		log:      log,
		now:      time.Now,
	}
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

func totalPages(total int64, pageSize int) int {
	return int(math.Ceil(float64(total) / float64(pageSize)))
}

// storedStatuses maps the requested status filter to the stored statuses
// that must be fetched. A "pending" view also needs stored-published
// records, whose schedule may still put them in the future.
func storedStatuses(filter models.ArticleStatus) []models.ArticleStatus {
	switch filter {
	case "":
		return nil
	case models.StatusPending:
		return []models.ArticleStatus{models.StatusPending, models.StatusPublished}
	default:
		return []models.ArticleStatus{filter}
	}
}

// filterEffective is the second pass over a fetched page: stored status
// alone cannot answer published-vs-pending, the resolved schedule instant
// decides. Other filters pass the page through untouched.
func filterEffective(articles []models.Article, filter models.ArticleStatus, now time.Time) []models.Article {
	if filter != models.StatusPublished && filter != models.StatusPending {
		return articles
	}
	kept := articles[:0]
	for _, a := range articles {
		if EffectiveStatus(&a, now) == filter {
			kept = append(kept, a)
		}
	}
	return kept
}

// List runs a listing query: stored-status filter and sort at the store,
// effective-visibility filter in memory over the fetched page.
func (s *Service) List(ctx context.Context, req ListRequest) (*Listing, error) {
	page, pageSize := normalizePage(req.Page, req.PageSize)

	f := repository.ArticleFilter{
		Category: req.Category,
		Tag:      req.Tag,
		Author:   req.Author,
		Statuses: storedStatuses(req.StatusFilter),
	}

	total, err := s.articles.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	articles, err := s.articles.Find(ctx, f, req.Sort, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	articles = filterEffective(articles, req.StatusFilter, s.now())

	return &Listing{
		Articles: articles,
		Pagination: Pagination{
			Total:       total,
			CurrentPage: page,
			TotalPages:  totalPages(total, pageSize),
		},
	}, nil
}

func (s *Service) ListByCategory(ctx context.Context, categoryID string, page int, status models.ArticleStatus) (*Listing, error) {
	return s.List(ctx, ListRequest{Category: categoryID, StatusFilter: status, Page: page})
}

func (s *Service) ListByTag(ctx context.Context, tagID, categoryID string, page int) (*Listing, error) {
	return s.List(ctx, ListRequest{
		Tag:          tagID,
		Category:     categoryID,
		StatusFilter: models.StatusPublished,
		Page:         page,
	})
}

func (s *Service) ListByAuthor(ctx context.Context, authorID string, page int, status models.ArticleStatus) (*Listing, error) {
	return s.List(ctx, ListRequest{
		Author:       authorID,
		StatusFilter: status,
		Page:         page,
		Sort:         repository.SortByCreatedAt,
	})
}

// Trending lists published articles by view count.
func (s *Service) Trending(ctx context.Context, page int) (*Listing, error) {
	return s.List(ctx, ListRequest{
		StatusFilter: models.StatusPublished,
		Page:         page,
		Sort:         repository.SortByViews,
	})
}

// Search delegates ranking to the store (title > abstract > body weights,
// published records only, premium first) and paginates like any listing.
func (s *Service) Search(ctx context.Context, query string, page int) (*Listing, error) {
	page, pageSize := normalizePage(page, 0)

	total, err := s.articles.CountSearch(ctx, query)
	if err != nil {
		return nil, err
	}

	articles, err := s.articles.Search(ctx, query, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	return &Listing{
		Articles: articles,
		Pagination: Pagination{
			Total:       total,
			CurrentPage: page,
			TotalPages:  totalPages(total, pageSize),
		},
	}, nil
}

// Get returns one article or ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*models.Article, error) {
	article, err := s.articles.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

// AuthorByName looks an author up by display name, for the public author
// page.
func (s *Service) AuthorByName(ctx context.Context, name string) (*models.User, error) {
	user, err := s.users.FindByName(ctx, name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Related returns up to six random published articles sharing a category,
// for the article-page sidebar.
func (s *Service) Related(ctx context.Context, categoryID, excludeID string) ([]models.Article, error) {
	if categoryID == "" {
		return nil, nil
	}
	return s.articles.SameCategory(ctx, categoryID, excludeID, 6)
}

// IncrementViews bumps the view counter without blocking or failing the
// request; lost increments are acceptable.
func (s *Service) IncrementViews(id string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.articles.IncrementViews(ctx, id); err != nil {
			s.log.Warn().Err(err).Str("article_id", id).Msg("view increment failed")
		}
	}()
}

// Apply runs a lifecycle transition against the stored article and persists
// the result.
func (s *Service) Apply(ctx context.Context, id string, action Action, payload TransitionPayload) (*models.Article, error) {
	article, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Transition(article, action, payload); err != nil {
		return nil, err
	}
	if err := s.articles.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}
