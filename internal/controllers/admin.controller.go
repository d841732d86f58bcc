package controllers

import (
	"net/http"

	"newsroom/internal/models"
	"newsroom/internal/publishing"
	"newsroom/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AdminController is the back office: user management tabs, the
// cross-category approval queue, and category/tag CRUD.
type AdminController struct {
	service    *publishing.Service
	users      repository.UserRepository
	categories repository.CategoryRepository
	tags       repository.TagRepository
	log        zerolog.Logger
}

func NewAdminController(
	service *publishing.Service,
	users repository.UserRepository,
	categories repository.CategoryRepository,
	tags repository.TagRepository,
	log zerolog.Logger,
) *AdminController {
	return &AdminController{
		service:    service,
		users:      users,
		categories: categories,
		tags:       tags,
		log:        log,
	}
}

// tabRole maps a management tab to the role it lists; the ban tab shows
// every account.
func tabRole(tab string) models.Role {
	switch tab {
	case "verify-editors":
		return models.RoleEditor
	case "extend-subscription":
		return models.RoleSubscriber
	default:
		return ""
	}
}

// ManageUsers serves /manage-users/:tab and its /search variant.
func (adc *AdminController) ManageUsers(c *gin.Context) {
	tab := c.Param("tab")
	page := pageParam(c)
	search := c.Query("searchUser")

	role := tabRole(tab)
	pageSize := publishing.DefaultPageSize

	total, err := adc.users.Count(c.Request.Context(), role, search)
	if err != nil {
		adc.log.Error().Err(err).Str("tab", tab).Msg("user listing failed")
		respondError(c, err)
		return
	}

	users, err := adc.users.Find(c.Request.Context(), role, search, (page-1)*pageSize, pageSize)
	if err != nil {
		adc.log.Error().Err(err).Str("tab", tab).Msg("user listing failed")
		respondError(c, err)
		return
	}
	for i := range users {
		users[i].Password = ""
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{
		"title":       "Manage Users",
		"current_tab": tab,
		"users":       users,
		"pagination": publishing.Pagination{
			Total:       total,
			CurrentPage: page,
			TotalPages:  int((total + int64(pageSize) - 1) / int64(pageSize)),
		},
	}})
}

type banRequest struct {
	Ban bool `json:"ban"`
}

// SetBan bans or unbans an account.
func (adc *AdminController) SetBan(c *gin.Context) {
	var req banRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := adc.users.Patch(c.Request.Context(), c.Param("id"), map[string]interface{}{"ban": req.Ban}); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User ban state updated",
	})
}

type verifyEditorRequest struct {
	Category string `json:"category" binding:"required"`
}

// VerifyEditor marks an editor verified and assigns the single category
// they moderate.
func (adc *AdminController) VerifyEditor(c *gin.Context) {
	var req verifyEditorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := adc.users.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if user.Role != models.RoleEditor {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "User is not an editor",
		})
		return
	}

	if err := adc.users.Patch(c.Request.Context(), user.ID, map[string]interface{}{
		"verified": true,
		"category": req.Category,
	}); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Editor verified and category assigned",
	})
}

type extendSubscriptionRequest struct {
	Minutes int64 `json:"minutes" binding:"required,gt=0"`
}

// ExtendSubscription adds minutes to a subscriber's expiry offset.
func (adc *AdminController) ExtendSubscription(c *gin.Context) {
	var req extendSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := adc.users.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if user.Role != models.RoleSubscriber {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "User is not a subscriber",
		})
		return
	}

	if err := adc.users.Patch(c.Request.Context(), user.ID, map[string]interface{}{
		"subscription_expiry": user.SubscriptionExpiry + req.Minutes,
	}); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Subscription extended",
	})
}

// ApprovalQueue lists pending articles across every category.
func (adc *AdminController) ApprovalQueue(c *gin.Context) {
	listing, err := adc.service.List(c.Request.Context(), publishing.ListRequest{
		StatusFilter: models.StatusPending,
		Page:         pageParam(c),
		Sort:         repository.SortByCreatedAt,
	})
	if err != nil {
		adc.log.Error().Err(err).Msg("approval queue failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{
		"title":      "Pending Approval",
		"articles":   listing.Articles,
		"pagination": listing.Pagination,
	}})
}

type categoryInput struct {
	Name   string `json:"name" binding:"required"`
	Image  string `json:"image"`
	Parent string `json:"parent"`
}

func (adc *AdminController) CreateCategory(c *gin.Context) {
	var in categoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	category := &models.Category{
		ID:     uuid.NewString(),
		Name:   in.Name,
		Image:  in.Image,
		Parent: in.Parent,
	}
	if err := adc.categories.Create(c.Request.Context(), category); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Category created successfully",
		"data":    category,
	})
}

func (adc *AdminController) ListCategories(c *gin.Context) {
	categories, err := adc.categories.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": categories})
}

func (adc *AdminController) UpdateCategory(c *gin.Context) {
	var in categoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	category, err := adc.categories.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	category.Name = in.Name
	category.Image = in.Image
	category.Parent = in.Parent
	if err := adc.categories.Update(c.Request.Context(), category); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Category updated successfully",
		"data":    category,
	})
}

func (adc *AdminController) DeleteCategory(c *gin.Context) {
	if _, err := adc.categories.FindByID(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	if err := adc.categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Category deleted successfully",
	})
}

type tagInput struct {
	Name string `json:"name" binding:"required"`
}

func (adc *AdminController) CreateTag(c *gin.Context) {
	var in tagInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	tag := &models.Tag{ID: uuid.NewString(), Name: in.Name}
	if err := adc.tags.Create(c.Request.Context(), tag); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Tag created successfully",
		"data":    tag,
	})
}

func (adc *AdminController) ListTags(c *gin.Context) {
	tags, err := adc.tags.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": tags})
}

func (adc *AdminController) UpdateTag(c *gin.Context) {
	var in tagInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	tag, err := adc.tags.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	tag.Name = in.Name
	if err := adc.tags.Update(c.Request.Context(), tag); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Tag updated successfully",
		"data":    tag,
	})
}

func (adc *AdminController) DeleteTag(c *gin.Context) {
	if _, err := adc.tags.FindByID(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	if err := adc.tags.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Tag deleted successfully",
	})
}
