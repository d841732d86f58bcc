package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "newsroom_http_requests_total",
		Help: "HTTP requests by method, path pattern and status code.",
	}, []string{"method", "path", "status"})

	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "newsroom_page_cache_hits_total",
		Help: "Page cache hits.",
	})

	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "newsroom_page_cache_misses_total",
		Help: "Page cache misses, including cache errors.",
	})

	ArticleViews = promauto.NewCounter(prometheus.CounterOpts{
		Name: "newsroom_article_views_total",
		Help: "Article view increments issued.",
	})
)
