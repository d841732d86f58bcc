package controllers

import (
	"context"
	"net/http"
	"time"

	"newsroom/internal/metrics"
	"newsroom/internal/middleware"
	"newsroom/internal/models"
	"newsroom/internal/publishing"
	"newsroom/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ArticleController serves the public article page and the /api/articles
// REST mirror.
type ArticleController struct {
	service     *publishing.Service
	articles    repository.ArticleRepository
	categories  repository.CategoryRepository
	tags        repository.TagRepository
	comments    repository.CommentRepository
	pageTimeout time.Duration
	sanitizer   *bluemonday.Policy
	log         zerolog.Logger
}

func NewArticleController(
	service *publishing.Service,
	articles repository.ArticleRepository,
	categories repository.CategoryRepository,
	tags repository.TagRepository,
	comments repository.CommentRepository,
	pageTimeout time.Duration,
	log zerolog.Logger,
) *ArticleController {
	return &ArticleController{
		service:     service,
		articles:    articles,
		categories:  categories,
		tags:        tags,
		comments:    comments,
		pageTimeout: pageTimeout,
		sanitizer:   bluemonday.UGCPolicy(),
		log:         log,
	}
}

type categoryCrumb struct {
	Name       string `json:"name"`
	ParentName string `json:"parent_name,omitempty"`
}

// Show godoc
// @Summary Article page
// @Description Full article with related articles, comments and byline
// @Tags article
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{} "Premium article, not logged in"
// @Failure 403 {object} map[string]interface{} "Subscription required or expired"
// @Failure 404 {object} map[string]interface{}
// @Router /article/{id} [get]
func (ac *ArticleController) Show(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), ac.pageTimeout)
	defer cancel()

	article, err := ac.service.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now()
	if publishing.EffectiveStatus(article, now) != models.StatusPublished {
		respondError(c, publishing.ErrNotFound)
		return
	}

	viewer := middleware.CurrentUser(c)
	if err := publishing.CanViewPremium(article, viewer, now); err != nil {
		respondError(c, err)
		return
	}

	var (
		related    []models.Article
		comments   []models.Comment
		categories []models.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		related, err = ac.service.Related(gctx, article.PrimaryCategory(), article.ID)
		return err
	})
	g.Go(func() (err error) {
		comments, err = ac.comments.FindByArticle(gctx, article.ID)
		return err
	})
	g.Go(func() (err error) {
		categories, err = ac.categories.FindAll(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		ac.log.Error().Err(err).Str("article_id", article.ID).Msg("article page assembly failed")
		respondError(c, err)
		return
	}

	byID := make(map[string]models.Category, len(categories))
	for _, cat := range categories {
		byID[cat.ID] = cat
	}
	crumbs := make([]categoryCrumb, 0, len(article.Category))
	for _, id := range article.Category {
		cat, ok := byID[id]
		if !ok {
			continue
		}
		crumb := categoryCrumb{Name: cat.Name}
		if parent, ok := byID[cat.Parent]; ok {
			crumb.ParentName = parent.Name
		}
		crumbs = append(crumbs, crumb)
	}

	ac.service.IncrementViews(article.ID)
	metrics.ArticleViews.Inc()

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"article":        article,
			"author_names":   ac.service.AuthorNames(ctx, article.Author),
			"category_data":  crumbs,
			"related":        related,
			"comments":       comments,
		},
	})
}

type articleInput struct {
	Name      string   `json:"name" binding:"required"`
	Image     string   `json:"image"`
	Abstract  string   `json:"abstract" binding:"required"`
	Content   string   `json:"content" binding:"required"`
	Category  []string `json:"category" binding:"required"`
	Tags      []string `json:"tags"`
	IsPremium bool     `json:"is_premium"`
	Author    []string `json:"author"`
}

func (ac *ArticleController) fromInput(in articleInput) *models.Article {
	return &models.Article{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Image:     in.Image,
		Abstract:  in.Abstract,
		Content:   ac.sanitizer.Sanitize(in.Content),
		Category:  in.Category,
		Tags:      in.Tags,
		IsPremium: in.IsPremium,
		Status:    models.StatusDraft,
		Author:    publishing.NormalizeBylines(in.Author),
	}
}

// List godoc
// @Summary List articles
// @Tags api
// @Produce json
// @Param status query string false "Stored status filter"
// @Param page query int false "Page number"
// @Success 200 {object} map[string]interface{}
// @Router /api/articles [get]
func (ac *ArticleController) List(c *gin.Context) {
	listing, err := ac.service.List(c.Request.Context(), publishing.ListRequest{
		StatusFilter: models.ArticleStatus(c.Query("status")),
		Page:         pageParam(c),
	})
	if err != nil {
		ac.log.Error().Err(err).Msg("article list failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": listing})
}

// Get returns a single raw article record.
func (ac *ArticleController) Get(c *gin.Context) {
	article, err := ac.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": article})
}

// Create accepts either one article object or an array of them (bulk
// import of crawled records).
func (ac *ArticleController) Create(c *gin.Context) {
	var batch []articleInput
	if err := c.ShouldBindBodyWithJSON(&batch); err != nil {
		var single articleInput
		if err := c.ShouldBindBodyWithJSON(&single); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   err.Error(),
			})
			return
		}
		batch = []articleInput{single}
	}

	created := make([]models.Article, 0, len(batch))
	for _, in := range batch {
		article := ac.fromInput(in)
		if err := ac.articles.Create(c.Request.Context(), article); err != nil {
			ac.log.Error().Err(err).Str("name", in.Name).Msg("article create failed")
			respondError(c, err)
			return
		}
		created = append(created, *article)
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Articles created successfully",
		"data":    created,
	})
}

// Update applies a partial update to an article record.
func (ac *ArticleController) Update(c *gin.Context) {
	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	id := c.Param("id")
	if _, err := ac.service.Get(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	if content, ok := data["content"].(string); ok {
		data["content"] = ac.sanitizer.Sanitize(content)
	}
	delete(data, "id")

	if err := ac.articles.Patch(c.Request.Context(), id, data); err != nil {
		ac.log.Error().Err(err).Str("article_id", id).Msg("article update failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article updated successfully",
	})
}

// Delete removes an article record.
func (ac *ArticleController) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := ac.service.Get(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	if err := ac.articles.Delete(c.Request.Context(), id); err != nil {
		ac.log.Error().Err(err).Str("article_id", id).Msg("article delete failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article deleted successfully",
	})
}
