package cache

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "homepage", HomeKey)
	assert.Equal(t, "category_Sports_News", CategoryKey("Sports", "News"))
	assert.Equal(t, "category_Sports_", CategoryKey("Sports", ""))
	assert.Equal(t, "tag_election_category_Politics_page_2", TagKey("election", "Politics", 2))
}

func TestNilClientDisablesCaching(t *testing.T) {
	p := NewPageCache(nil, 300*time.Second, zerolog.Nop())

	var dest map[string]string
	assert.False(t, p.Get(context.Background(), HomeKey, &dest))

	// Set must be a no-op, not a panic.
	p.Set(context.Background(), HomeKey, map[string]string{"k": "v"})
	assert.False(t, p.Get(context.Background(), HomeKey, &dest))
}

func TestNilCacheIsSafe(t *testing.T) {
	var p *PageCache
	var dest string
	assert.False(t, p.Get(context.Background(), "k", &dest))
	p.Set(context.Background(), "k", "v")
}
