package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"campus-coffee-backend/internal/mw"
	"campus-coffee-backend/internal/service"
)

// RouterConfig tunes the middleware applied to the API group.
type RouterConfig struct {
	RateLimitPerSec float64
	RateLimitBurst  int
	CacheTTL        time.Duration
}

// NewRouter creates and configures a new Gin router.
func NewRouter(svc *service.PosService, log zerolog.Logger, cfg RouterConfig) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(svc, log)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	cacheStore := cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	caching := mw.Cache(cacheStore, cfg.CacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/pos", caching, handler.ListPos)
		api.GET("/pos/:id", caching, handler.GetPos)
		api.POST("/pos", handler.CreatePos)
		api.PUT("/pos/:id", handler.UpdatePos)
		api.POST("/pos/import/osm/:node_id", handler.ImportOsmNode)
	}

	return r
}
