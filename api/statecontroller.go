package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterStateRoutes registers the JSON view of the session
func RegisterStateRoutes(r *gin.Engine, s *Server) {
	g := r.Group("/api", s.sessionMiddleware())
	g.GET("/state", handleState)
}

func handleState(c *gin.Context) {
	c.JSON(http.StatusOK, session(c).Snapshot())
}
