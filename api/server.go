package api

import (
	"net/http"
	"time"

	"adcopy/state"
	"adcopy/workflow"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server carries what the handlers share: the session store and the workflow collaborators
type Server struct {
	store *state.Store
	deps  workflow.Deps
}

// NewServer creates a new API server instance
func NewServer(store *state.Store, deps workflow.Deps) *Server {
	return &Server{store: store, deps: deps}
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(s *Server, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), gin.Logger())

	if len(corsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     corsOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Register resource routers
	RegisterHealthRoutes(r)
	RegisterPageRoutes(r, s)
	RegisterStateRoutes(r, s)
	return r
}
