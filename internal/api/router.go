package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SpdVpr/ainews/internal/aggregator"
	"github.com/SpdVpr/ainews/internal/cache"
	"github.com/SpdVpr/ainews/internal/collector"
)

// NewsCacheKey is where the serialized latest-news payload lives; shared
// with the scheduler's warm refresh.
const NewsCacheKey = "ainews:latest"

// Provider produces the aggregated news list. It never fails; degraded runs
// return fallback content.
type Provider interface {
	Latest(ctx context.Context) []collector.NewsItem
}

type Server struct {
	provider Provider
	fallback aggregator.Fallback
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewServer(provider Provider, fallback aggregator.Fallback, c cache.Cache, cacheTTL time.Duration) *Server {
	return &Server{provider: provider, fallback: fallback, cache: c, cacheTTL: cacheTTL}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/ai-news", s.listAINews)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// listAINews always answers 200 with a JSON array. There is no error exit:
// the provider degrades to demo content on its own failures, and anything
// that still escapes it is caught here, so the consumer never sees an empty
// or broken payload.
func (s *Server) listAINews(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("api: recovered from panic, serving fallback: %v", r)
			c.JSON(http.StatusOK, s.fallback.Items())
		}
	}()

	ctx := c.Request.Context()

	if s.cache != nil {
		if payload, ok := s.cache.Get(ctx, NewsCacheKey); ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
			return
		}
	}

	items := s.provider.Latest(ctx)

	if s.cache != nil {
		if payload, err := json.Marshal(items); err == nil {
			s.cache.Set(ctx, NewsCacheKey, payload, s.cacheTTL)
		}
	}

	c.JSON(http.StatusOK, items)
}
