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

// CommentController handles the comment thread under an article.
type CommentController struct {
	comments  repository.CommentRepository
	service   *publishing.Service
	sanitizer *bluemonday.Policy
	log       zerolog.Logger
}

func NewCommentController(comments repository.CommentRepository, service *publishing.Service, log zerolog.Logger) *CommentController {
	return &CommentController{
		comments:  comments,
		service:   service,
		sanitizer: bluemonday.StrictPolicy(),
		log:       log,
	}
}

// List returns the comments on a visible article, newest first.
func (cc *CommentController) List(c *gin.Context) {
	article, err := cc.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if publishing.EffectiveStatus(article, time.Now()) != models.StatusPublished {
		respondError(c, publishing.ErrNotFound)
		return
	}

	comments, err := cc.comments.FindByArticle(c.Request.Context(), article.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": comments})
}

type commentInput struct {
	Content string `json:"content" binding:"required"`
}

// Create appends a comment to a visible article.
func (cc *CommentController) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if d := publishing.Authorize(user, publishing.CapComment); !d.Allowed {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": d.Reason,
		})
		return
	}

	var req commentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	article, err := cc.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if publishing.EffectiveStatus(article, time.Now()) != models.StatusPublished {
		respondError(c, publishing.ErrNotFound)
		return
	}

	comment := &models.Comment{
		ID:        uuid.NewString(),
		ArticleID: article.ID,
		UserID:    user.ID,
		Content:   cc.sanitizer.Sanitize(req.Content),
	}
	if err := cc.comments.Create(c.Request.Context(), comment); err != nil {
		cc.log.Error().Err(err).Str("article_id", article.ID).Msg("comment create failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Comment posted successfully",
		"data":    comment,
	})
}
