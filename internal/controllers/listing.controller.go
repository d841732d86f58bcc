package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"newsroom/internal/cache"
	"newsroom/internal/models"
	"newsroom/internal/publishing"
	"newsroom/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ListingController serves every public browse surface: home, category,
// tag, author, trending and search pages. Page assembly fans out the
// independent lookups and races them against a single timeout.
type ListingController struct {
	service     *publishing.Service
	categories  repository.CategoryRepository
	tags        repository.TagRepository
	pages       *cache.PageCache
	pageTimeout time.Duration
	log         zerolog.Logger
}

func NewListingController(
	service *publishing.Service,
	categories repository.CategoryRepository,
	tags repository.TagRepository,
	pages *cache.PageCache,
	pageTimeout time.Duration,
	log zerolog.Logger,
) *ListingController {
	return &ListingController{
		service:     service,
		categories:  categories,
		tags:        tags,
		pages:       pages,
		pageTimeout: pageTimeout,
		log:         log,
	}
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// listingPage is the serialized page payload; one shape for every browse
// surface so pages cache uniformly.
type listingPage struct {
	Title          string               `json:"title"`
	Articles       []articleSummary     `json:"articles"`
	Pagination     publishing.Pagination `json:"pagination"`
	Categories     []models.Category    `json:"categories,omitempty"`
	CategoryFamily []models.Category    `json:"category_family,omitempty"`
	Tags           []models.Tag         `json:"tags,omitempty"`
	Author         *models.User         `json:"author,omitempty"`
	SearchQuery    string               `json:"search_query,omitempty"`
}

type articleSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Image       string   `json:"image"`
	Abstract    string   `json:"abstract"`
	IsPremium   bool     `json:"is_premium"`
	PublishedAt string   `json:"published_at"`
	Views       int64    `json:"views"`
	Category    []string `json:"category"`
	AuthorNames []string `json:"author_names"`
}

func (lc *ListingController) summarize(ctx context.Context, articles []models.Article) []articleSummary {
	summaries := make([]articleSummary, len(articles))
	for i, a := range articles {
		summaries[i] = articleSummary{
			ID:          a.ID,
			Name:        a.Name,
			Image:       a.Image,
			Abstract:    a.Abstract,
			IsPremium:   a.IsPremium,
			PublishedAt: a.PublishedAt,
			Views:       a.Views,
			Category:    a.Category,
			AuthorNames: lc.service.AuthorNames(ctx, a.Author),
		}
	}
	return summaries
}

// Home godoc
// @Summary Home page
// @Description Latest published articles with categories and tags
// @Tags listing
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (lc *ListingController) Home(c *gin.Context) {
	var page listingPage
	if lc.pages.Get(c.Request.Context(), cache.HomeKey, &page) {
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": page})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), lc.pageTimeout)
	defer cancel()

	var (
		listing    *publishing.Listing
		categories []models.Category
		tags       []models.Tag
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		listing, err = lc.service.List(gctx, publishing.ListRequest{
			StatusFilter: models.StatusPublished,
			Page:         1,
		})
		return err
	})
	g.Go(func() (err error) {
		categories, err = lc.categories.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		tags, err = lc.tags.FindAll(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		lc.log.Error().Err(err).Msg("home page assembly failed")
		respondError(c, err)
		return
	}

	page = listingPage{
		Title:      "Home",
		Articles:   lc.summarize(ctx, listing.Articles),
		Pagination: listing.Pagination,
		Categories: categories,
		Tags:       tags,
	}

	lc.pages.Set(c.Request.Context(), cache.HomeKey, page)
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": page})
}

// Category godoc
// @Summary Category listing page
// @Tags listing
// @Produce json
// @Param category path string true "Category name"
// @Param p query string false "Parent category name"
// @Param page query int false "Page number"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /categories/{category} [get]
func (lc *ListingController) Category(c *gin.Context) {
	categoryName := c.Param("category")
	parentName := c.Query("p")
	pageNum := pageParam(c)

	key := cache.CategoryKey(categoryName, parentName)
	var page listingPage
	if pageNum == 1 && lc.pages.Get(c.Request.Context(), key, &page) {
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": page})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), lc.pageTimeout)
	defer cancel()

	categories, err := lc.categories.FindAll(ctx)
	if err != nil {
		lc.log.Error().Err(err).Msg("category lookup failed")
		respondError(c, err)
		return
	}

	var category *models.Category
	for i := range categories {
		if categories[i].Name == categoryName {
			category = &categories[i]
			break
		}
	}
	if category == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Category not found",
		})
		return
	}

	var (
		listing *publishing.Listing
		tags    []models.Tag
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		listing, err = lc.service.ListByCategory(gctx, category.ID, pageNum, models.StatusPublished)
		return err
	})
	g.Go(func() (err error) {
		tags, err = lc.tags.FindAll(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		lc.log.Error().Err(err).Str("category", categoryName).Msg("category page assembly failed")
		respondError(c, err)
		return
	}

	page = listingPage{
		Title:          categoryName,
		Articles:       lc.summarize(ctx, listing.Articles),
		Pagination:     listing.Pagination,
		Categories:     categories,
		CategoryFamily: publishing.CategoryFamily(categories, *category),
		Tags:           tags,
	}

	if pageNum == 1 {
		lc.pages.Set(c.Request.Context(), key, page)
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": page})
}

// Tag godoc
// @Summary Tag listing page
// @Tags listing
// @Produce json
// @Param tag path string true "Tag name"
// @Param category query string false "Restrict to a category name"
// @Param page query int false "Page number"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /tags/{tag} [get]
func (lc *ListingController) Tag(c *gin.Context) {
	tagName := c.Param("tag")
	categoryName := c.Query("category")
	pageNum := pageParam(c)

	key := cache.TagKey(tagName, categoryName, pageNum)
	var page listingPage
	if lc.pages.Get(c.Request.Context(), key, &page) {
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": page})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), lc.pageTimeout)
	defer cancel()

	tag, err := lc.tags.FindByName(ctx, tagName)
	if err != nil {
		respondError(c, publishing.ErrNotFound)
		return
	}

	categoryID := ""
	if categoryName != "" {
		if category, err := lc.categories.FindByName(ctx, categoryName); err == nil {
			categoryID = category.ID
		}
	}

	var (
		listing    *publishing.Listing
		categories []models.Category
		tags       []models.Tag
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		listing, err = lc.service.ListByTag(gctx, tag.ID, categoryID, pageNum)
		return err
	})
	g.Go(func() (err error) {
		categories, err = lc.categories.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		tags, err = lc.tags.FindAll(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		lc.log.Error().Err(err).Str("tag", tagName).Msg("tag page assembly failed")
		respondError(c, err)
		return
	}

	page = listingPage{
		Title:      "#" + tagName,
		Articles:   lc.summarize(ctx, listing.Articles),
		Pagination: listing.Pagination,
		Categories: categories,
		Tags:       tags,
	}

	lc.pages.Set(c.Request.Context(), key, page)
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": page})
}

// Trend godoc
// @Summary Trending articles by view count
// @Tags listing
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} map[string]interface{}
// @Router /trend [get]
func (lc *ListingController) Trend(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), lc.pageTimeout)
	defer cancel()

	var (
		listing    *publishing.Listing
		categories []models.Category
		tags       []models.Tag
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		listing, err = lc.service.Trending(gctx, pageParam(c))
		return err
	})
	g.Go(func() (err error) {
		categories, err = lc.categories.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		tags, err = lc.tags.FindAll(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		lc.log.Error().Err(err).Msg("trend page assembly failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": listingPage{
		Title:      "Trending",
		Articles:   lc.summarize(ctx, listing.Articles),
		Pagination: listing.Pagination,
		Categories: categories,
		Tags:       tags,
	}})
}

// Author godoc
// @Summary Articles by author display name
// @Tags listing
// @Produce json
// @Param author path string true "Author name"
// @Param page query int false "Page number"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /author/{author} [get]
func (lc *ListingController) Author(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), lc.pageTimeout)
	defer cancel()

	author, err := lc.service.AuthorByName(ctx, c.Param("author"))
	if err != nil {
		respondError(c, err)
		return
	}

	listing, err := lc.service.ListByAuthor(ctx, author.ID, pageParam(c), models.StatusPublished)
	if err != nil {
		lc.log.Error().Err(err).Str("author", author.ID).Msg("author page assembly failed")
		respondError(c, err)
		return
	}

	tags, err := lc.tags.FindAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	author.Password = ""
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": listingPage{
		Title:      author.Name,
		Articles:   lc.summarize(ctx, listing.Articles),
		Pagination: listing.Pagination,
		Tags:       tags,
		Author:     author,
	}})
}

// Search godoc
// @Summary Full-text article search
// @Tags listing
// @Produce json
// @Param q query string true "Search terms"
// @Param page query int false "Page number"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /search [get]
func (lc *ListingController) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Missing search query",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), lc.pageTimeout)
	defer cancel()

	var (
		listing    *publishing.Listing
		categories []models.Category
		tags       []models.Tag
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		listing, err = lc.service.Search(gctx, query, pageParam(c))
		return err
	})
	g.Go(func() (err error) {
		categories, err = lc.categories.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		tags, err = lc.tags.FindAll(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		lc.log.Error().Err(err).Str("query", query).Msg("search failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": listingPage{
		Title:       "Search",
		Articles:    lc.summarize(ctx, listing.Articles),
		Pagination:  listing.Pagination,
		Categories:  categories,
		Tags:        tags,
		SearchQuery: query,
	}})
}
