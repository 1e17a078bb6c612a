package server

import (
	stderrors "errors"
	"net/http"
	"strings"
	"time"

	"chaintable/pkg/errors"
	"chaintable/pkg/hashtable"
	"chaintable/pkg/logger"

	"github.com/gin-gonic/gin"
)

func direction(reverse bool) hashtable.Direction {
	if reverse {
		return hashtable.Reverse
	}
	return hashtable.Forward
}

// statusOf maps table errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, errors.ErrDuplicateKey):
		return http.StatusConflict
	case stderrors.Is(err, errors.ErrInvalidArgument):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// pairKey returns the catch-all key parameter without its leading slash.
func pairKey(c *gin.Context) string {
	return strings.TrimPrefix(c.Param("key"), "/")
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusOf(err), gin.H{"error": err.Error()})
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

func (s *Server) handleHealthCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func (s *Server) handleStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.store.Stats())
	}
}

func (s *Server) handleReset() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.store.Reset()
		c.Status(http.StatusNoContent)
	}
}

func (s *Server) handleInsertPair() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req InsertPairRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err := s.store.Insert([]byte(req.Key), []byte(req.Value), req.Pos, direction(req.Reverse), req.Unique)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.JSON(http.StatusCreated, PairResponse{
			Key:     req.Key,
			Value:   req.Value,
			Pos:     req.Pos,
			Reverse: req.Reverse,
		})
	}
}

func (s *Server) handleGetPair() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := pairKey(c)
		var q PositionQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		value, err := s.store.Get([]byte(key), q.Pos, direction(q.Reverse))
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, PairResponse{
			Key:     key,
			Value:   string(value),
			Pos:     q.Pos,
			Reverse: q.Reverse,
		})
	}
}

func (s *Server) handleRemovePair() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := pairKey(c)
		var q PositionQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := s.store.Remove([]byte(key), q.Pos, direction(q.Reverse)); err != nil {
			abortWithError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
