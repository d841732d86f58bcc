package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"newsroom/internal/models"
	"newsroom/internal/publishing"
	"newsroom/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// crawledArticle is the shape the crawler exports: category and tag names
// rather than ids, a raw byline string, and the legacy display timestamp.
type crawledArticle struct {
	Name        string   `json:"name"`
	Image       string   `json:"image"`
	Abstract    string   `json:"abstract"`
	Content     string   `json:"content"`
	Category    []string `json:"category"`
	Tags        []string `json:"tags"`
	IsPremium   bool     `json:"isPremium"`
	Author      string   `json:"author"`
	PublishedAt string   `json:"publishedAt"`
	Views       int64    `json:"views"`
}

type crawledUser struct {
	Name     string `json:"name"`
	FullName string `json:"fullName"`
	PenName  string `json:"penName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func readJSON(path string, dest interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// ImportArticles loads a crawler export and stores each article as
// published, resolving the display timestamp to a canonical instant and
// splitting the byline into individual author names.
func ImportArticles(ctx context.Context, path string, articles repository.ArticleRepository, log zerolog.Logger) (int, error) {
	var crawled []crawledArticle
	if err := readJSON(path, &crawled); err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}

	imported := 0
	for _, ca := range crawled {
		article := &models.Article{
			ID:          uuid.NewString(),
			Name:        ca.Name,
			Image:       ca.Image,
			Abstract:    ca.Abstract,
			Content:     ca.Content,
			Category:    ca.Category,
			Tags:        ca.Tags,
			IsPremium:   ca.IsPremium,
			Status:      models.StatusPublished,
			PublishedAt: ca.PublishedAt,
			Author:      publishing.NormalizeBylines([]string{ca.Author}),
			Views:       ca.Views,
		}
		if instant, err := publishing.ParseDisplayTime(ca.PublishedAt); err == nil {
			article.PublishedDate = &instant
		} else {
			log.Warn().Str("name", ca.Name).Str("published_at", ca.PublishedAt).Msg("unparseable timestamp, article treated as immediately visible")
		}

		if err := articles.Create(ctx, article); err != nil {
			log.Error().Err(err).Str("name", ca.Name).Msg("article import failed")
			continue
		}
		imported++
	}
	return imported, nil
}

// ImportUsers loads a user export, hashing the plaintext passwords the
// fixture carries.
func ImportUsers(ctx context.Context, path string, users repository.UserRepository, log zerolog.Logger) (int, error) {
	var crawled []crawledUser
	if err := readJSON(path, &crawled); err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}

	imported := 0
	for _, cu := range crawled {
		hashed, err := bcrypt.GenerateFromPassword([]byte(cu.Password), bcrypt.DefaultCost)
		if err != nil {
			return imported, err
		}

		role := models.Role(cu.Role)
		if role == "" {
			role = models.RoleGuest
		}

		user := &models.User{
			ID:       uuid.NewString(),
			Name:     cu.Name,
			FullName: cu.FullName,
			PenName:  cu.PenName,
			Email:    cu.Email,
			Password: string(hashed),
			Role:     role,
			Verified: true,
		}
		if err := users.Create(ctx, user); err != nil {
			log.Error().Err(err).Str("email", cu.Email).Msg("user import failed")
			continue
		}
		imported++
	}
	return imported, nil
}
