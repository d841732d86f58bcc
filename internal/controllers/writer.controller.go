package controllers

import (
	"net/http"
	"time"

	"newsroom/internal/middleware"
	"newsroom/internal/models"
	"newsroom/internal/publishing"
	"newsroom/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
)

// WriterController covers the writer workspace: own-article dashboard,
// draft creation, editing and submission. Editing a rejected article
// resubmits it, clearing the rejection reason.
type WriterController struct {
	service   *publishing.Service
	articles  repository.ArticleRepository
	sanitizer *bluemonday.Policy
	log       zerolog.Logger
}

func NewWriterController(service *publishing.Service, articles repository.ArticleRepository, log zerolog.Logger) *WriterController {
	return &WriterController{
		service:   service,
		articles:  articles,
		sanitizer: bluemonday.UGCPolicy(),
		log:       log,
	}
}

// Dashboard lists the writer's own articles across all statuses.
func (wc *WriterController) Dashboard(c *gin.Context) {
	user := middleware.CurrentUser(c)

	listing, err := wc.service.ListByAuthor(c.Request.Context(), user.ID, pageParam(c), "")
	if err != nil {
		wc.log.Error().Err(err).Str("author", user.ID).Msg("writer dashboard failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{
		"title":      "Writer Dashboard",
		"articles":   listing.Articles,
		"pagination": listing.Pagination,
	}})
}

type draftInput struct {
	Name      string   `json:"name" binding:"required"`
	Image     string   `json:"image"`
	Abstract  string   `json:"abstract" binding:"required"`
	Content   string   `json:"content" binding:"required"`
	Category  []string `json:"category" binding:"required"`
	Tags      []string `json:"tags" binding:"required"`
	IsPremium bool     `json:"is_premium"`
	Submit    bool     `json:"submit"`
}

// Create godoc
// @Summary Create a draft
// @Description New articles start as drafts; submit=true queues the draft
// for review immediately.
// @Tags writer
// @Accept json
// @Produce json
// @Param article body draftInput true "Draft content"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /writer/create [post]
func (wc *WriterController) Create(c *gin.Context) {
	var in draftInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user := middleware.CurrentUser(c)
	article := &models.Article{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Image:     in.Image,
		Abstract:  in.Abstract,
		Content:   wc.sanitizer.Sanitize(in.Content),
		Category:  in.Category,
		Tags:      in.Tags,
		IsPremium: in.IsPremium,
		Status:    models.StatusDraft,
		Author:    []string{user.ID},
		CreatedAt: time.Now(),
	}

	if in.Submit {
		if err := publishing.Transition(article, publishing.ActionSubmit, publishing.TransitionPayload{}); err != nil {
			respondError(c, err)
			return
		}
	}

	if err := wc.articles.Create(c.Request.Context(), article); err != nil {
		wc.log.Error().Err(err).Str("author", user.ID).Msg("draft create failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Article created successfully",
		"data":    article,
	})
}

// ownArticle loads an article and checks the caller is one of its authors.
func (wc *WriterController) ownArticle(c *gin.Context) (*models.Article, *models.User, bool) {
	user := middleware.CurrentUser(c)
	article, err := wc.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return nil, nil, false
	}

	for _, authorID := range article.Author {
		if authorID == user.ID {
			return article, user, true
		}
	}
	respondError(c, publishing.ErrForbidden)
	return nil, nil, false
}

// Edit godoc
// @Summary Edit an own article
// @Description Editing a rejected article moves it back to draft and clears
// the rejection reason.
// @Tags writer
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param article body draftInput true "Updated content"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{} "Not an author of this article"
// @Router /writer/edit/{id} [post]
func (wc *WriterController) Edit(c *gin.Context) {
	article, _, ok := wc.ownArticle(c)
	if !ok {
		return
	}

	var in draftInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if article.Status == models.StatusRejected {
		if err := publishing.Transition(article, publishing.ActionResubmit, publishing.TransitionPayload{}); err != nil {
			respondError(c, err)
			return
		}
	}

	article.Name = in.Name
	article.Image = in.Image
	article.Abstract = in.Abstract
	article.Content = wc.sanitizer.Sanitize(in.Content)
	article.Category = in.Category
	article.Tags = in.Tags
	article.IsPremium = in.IsPremium

	if in.Submit && article.Status == models.StatusDraft {
		if err := publishing.Transition(article, publishing.ActionSubmit, publishing.TransitionPayload{}); err != nil {
			respondError(c, err)
			return
		}
	}

	if err := wc.articles.Update(c.Request.Context(), article); err != nil {
		wc.log.Error().Err(err).Str("article_id", article.ID).Msg("article edit failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article updated successfully",
		"data":    article,
	})
}

// Submit moves a draft into the review queue.
func (wc *WriterController) Submit(c *gin.Context) {
	article, _, ok := wc.ownArticle(c)
	if !ok {
		return
	}

	if err := publishing.Transition(article, publishing.ActionSubmit, publishing.TransitionPayload{}); err != nil {
		respondError(c, err)
		return
	}
	if err := wc.articles.Update(c.Request.Context(), article); err != nil {
		wc.log.Error().Err(err).Str("article_id", article.ID).Msg("article submit failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article submitted for review",
		"data":    article,
	})
}
