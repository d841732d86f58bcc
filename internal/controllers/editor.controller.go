package controllers

import (
	"context"
	"net/http"
	"time"

	"newsroom/internal/middleware"
	"newsroom/internal/models"
	"newsroom/internal/publishing"
	"newsroom/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// EditorController is the review desk: queue tabs per lifecycle status for
// the editor's assigned category, article review, approve and reject.
type EditorController struct {
	service     *publishing.Service
	articles    repository.ArticleRepository
	categories  repository.CategoryRepository
	tags        repository.TagRepository
	pageTimeout time.Duration
	log         zerolog.Logger
}

func NewEditorController(
	service *publishing.Service,
	articles repository.ArticleRepository,
	categories repository.CategoryRepository,
	tags repository.TagRepository,
	pageTimeout time.Duration,
	log zerolog.Logger,
) *EditorController {
	return &EditorController{
		service:     service,
		articles:    articles,
		categories:  categories,
		tags:        tags,
		pageTimeout: pageTimeout,
		log:         log,
	}
}

var queueTabs = map[string]models.ArticleStatus{
	"published": models.StatusPublished,
	"pending":   models.StatusPending,
	"draft":     models.StatusDraft,
	"rejected":  models.StatusRejected,
}

// Queue godoc
// @Summary Editor dashboard
// @Description Articles in the editor's category, one tab per status. The
// published and pending tabs split on the resolved schedule instant, not
// the stored status alone.
// @Tags editor
// @Produce json
// @Param status query string false "Tab: published, pending, draft, rejected"
// @Param page query int false "Page number"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{} "No category assigned"
// @Router /editor [get]
func (ec *EditorController) Queue(c *gin.Context) {
	user := middleware.CurrentUser(c)

	tab := c.DefaultQuery("status", "published")
	status, ok := queueTabs[tab]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Unknown status tab",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), ec.pageTimeout)
	defer cancel()

	// Admins moderating from this view see every category.
	categoryID := user.Category
	if user.Role == models.RoleAdmin {
		categoryID = ""
	}

	var (
		listing    *publishing.Listing
		categories []models.Category
		tags       []models.Tag
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		listing, err = ec.service.ListByCategory(gctx, categoryID, pageParam(c), status)
		return err
	})
	g.Go(func() (err error) {
		categories, err = ec.categories.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		tags, err = ec.tags.FindAll(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		ec.log.Error().Err(err).Str("tab", tab).Msg("editor queue assembly failed")
		respondError(c, err)
		return
	}

	categoryName := ""
	for _, cat := range categories {
		if cat.ID == categoryID {
			categoryName = cat.Name
			break
		}
	}

	type queueArticle struct {
		models.Article
		AuthorNames []string `json:"author_names"`
	}
	articles := make([]queueArticle, len(listing.Articles))
	for i, a := range listing.Articles {
		articles[i] = queueArticle{
			Article:     a,
			AuthorNames: ec.service.AuthorNames(ctx, a.Author),
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{
		"title":         "Editor Dashboard",
		"category_name": categoryName,
		"active_tab":    tab,
		"articles":      articles,
		"pagination":    listing.Pagination,
		"categories":    categories,
		"tags":          tags,
	}})
}

// Review godoc
// @Summary Review one article
// @Tags editor
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /editor/article/{id} [get]
func (ec *EditorController) Review(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), ec.pageTimeout)
	defer cancel()

	article, err := ec.service.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var (
		categories []models.Category
		tags       []models.Tag
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		categories, err = ec.categories.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		tags, err = ec.tags.FindAll(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		ec.log.Error().Err(err).Str("article_id", article.ID).Msg("review page assembly failed")
		respondError(c, err)
		return
	}

	counts := make([]int64, len(article.Author))
	for i, authorID := range article.Author {
		if n, err := ec.articles.CountByAuthor(ctx, authorID); err == nil {
			counts[i] = n
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{
		"article":        article,
		"author_names":   ec.service.AuthorNames(ctx, article.Author),
		"article_counts": counts,
		"categories":     categories,
		"tags":           tags,
	}})
}

type approveRequest struct {
	Tags         []string `json:"tags"`
	Categories   []string `json:"categories" binding:"required"`
	ScheduleDate string   `json:"schedule_date" binding:"required"`
}

// Approve godoc
// @Summary Approve and schedule a pending article
// @Tags editor
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param request body approveRequest true "Final taxonomy and schedule"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{} "Not in pending status"
// @Router /editor/approve/{id} [post]
func (ec *EditorController) Approve(c *gin.Context) {
	var req approveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	schedule, err := publishing.ParseScheduleInput(req.ScheduleDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid schedule date",
			"error":   err.Error(),
		})
		return
	}

	user := middleware.CurrentUser(c)
	article, err := ec.service.Apply(c.Request.Context(), c.Param("id"), publishing.ActionApprove, publishing.TransitionPayload{
		Categories: req.Categories,
		Tags:       req.Tags,
		Schedule:   schedule,
		Editor:     user.ID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article approved successfully",
		"data":    article,
	})
}

type rejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// Reject godoc
// @Summary Reject a pending article with a reason
// @Tags editor
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param request body rejectRequest true "Rejection reason"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{} "Not in pending status"
// @Router /editor/reject/{id} [post]
func (ec *EditorController) Reject(c *gin.Context) {
	var req rejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	article, err := ec.service.Apply(c.Request.Context(), c.Param("id"), publishing.ActionReject, publishing.TransitionPayload{
		Reason: req.Reason,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article rejected successfully",
		"data":    article,
	})
}
