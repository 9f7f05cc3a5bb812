// README: API gateway; registers gin routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"farecast/internal/ai"
	"farecast/internal/config"
	"farecast/internal/http/handlers"
	"farecast/internal/http/middleware"
	"farecast/internal/maps"
	"farecast/internal/modules/conditions"
	"farecast/internal/modules/fare"
	"farecast/internal/modules/pricing"
)

type ServerDeps struct {
	Fare      *fare.Service
	Rates     *pricing.RateTable
	Profiles  *conditions.ProfileSet
	Routes    maps.Resolver
	Narrator  ai.Narrator
	RateLimit config.RateLimitConfig
	Logger    zerolog.Logger
}

type Server struct {
	deps ServerDeps
}

func NewServer(deps ServerDeps) *Server {
	return &Server{deps: deps}
}

func (s *Server) Routes() http.Handler {
	log := s.deps.Logger
	r := gin.New()
	r.Use(middleware.Recovery(log), middleware.Logging(log))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	fareHandler := handlers.NewFareHandler(s.deps.Fare, s.deps.Rates, s.deps.Profiles, s.deps.Routes, s.deps.Narrator, log)
	api := r.Group("/api/fare")
	if s.deps.RateLimit.PerSecond > 0 {
		api.Use(middleware.NewRateLimiter(s.deps.RateLimit.PerSecond, s.deps.RateLimit.Burst).Middleware())
	}
	api.POST("/estimate", fareHandler.Estimate)
	api.POST("/predict", fareHandler.Predict)
	api.POST("/insight", fareHandler.Insight)
	api.GET("/options", fareHandler.Options)

	return r
}
