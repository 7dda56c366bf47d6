// Package server exposes the advisory pipeline over HTTP. It is pure
// transport: every decision stays in the advisor packages.
package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mfajardo/transmalla/internal/advisor"
	"github.com/mfajardo/transmalla/internal/batch"
)

// Server wraps a gin engine around one Advisor.
type Server struct {
	engine *gin.Engine
	adv    *advisor.Advisor
	runner *batch.Runner
	logger *zap.Logger
}

// New builds the server and registers all routes.
func New(adv *advisor.Advisor, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	s := &Server{
		engine: engine,
		adv:    adv,
		runner: batch.NewRunner(adv, batch.DefaultConcurrency, logger),
		logger: logger,
	}

	engine.Use(gin.Recovery(), s.requestLog())

	engine.GET("/healthz", s.handleHealth)
	api := engine.Group("/api")
	{
		api.GET("/catalog", s.handleCatalog)
		api.POST("/recommendations", s.handleRecommend)
		api.POST("/recommendations/batch", s.handleRecommendBatch)
	}

	return s
}

// Engine returns the underlying gin engine, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	s.logger.Info("http server listening", zap.String("addr", addr))
	return s.engine.Run(addr)
}

// requestLog emits one structured line per request.
func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)))
	}
}
