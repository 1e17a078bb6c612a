package server

import (
	"net/http"

	"chaintable/internal/store"

	"github.com/gin-gonic/gin"
)

type Server struct {
	router *gin.Engine
	store  *store.Store
}

// New creates a new server instance
func New(s *store.Store) *Server {
	srv := &Server{
		store:  s,
		router: gin.New(),
	}
	srv.router.Use(gin.Recovery(), requestLogger())
	srv.setupRoutes()
	return srv
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleHealthCheck())
	s.router.GET("/v1/stats", s.handleStats())
	s.router.POST("/v1/reset", s.handleReset())

	s.router.POST("/v1/pairs", s.handleInsertPair())
	// keys may contain '/', so the key segment is a catch-all
	s.router.GET("/v1/pairs/*key", s.handleGetPair())
	s.router.DELETE("/v1/pairs/*key", s.handleRemovePair())
}

// Handler exposes the routes for embedding or testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves HTTP on addr until the listener fails.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
