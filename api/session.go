package api

import (
	"net/http"

	"adcopy/config"
	"adcopy/state"
	"adcopy/workflow"

	"github.com/gin-gonic/gin"
)

const (
	ctxSessionKey   = "session"
	ctxSessionIDKey = "session_id"
)

// sessionMiddleware attaches the browser's session, creating one on first
// visit. A new session loads the API status and examples before the handler runs.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	maxAge := int(s.store.TTL().Seconds())
	return func(c *gin.Context) {
		id, err := c.Cookie(config.SessionCookieName)
		if err != nil || !state.ValidSessionID(id) {
			id = state.NewSessionID()
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(config.SessionCookieName, id, maxAge, "/", "", false, true)

		m, created := s.store.Get(id)
		if created {
			workflow.NewRunner(m, s.deps).Init(c.Request.Context())
		}

		c.Set(ctxSessionKey, m)
		c.Set(ctxSessionIDKey, id)
		c.Next()
	}
}

func session(c *gin.Context) *state.Manager {
	return c.MustGet(ctxSessionKey).(*state.Manager)
}

func sessionID(c *gin.Context) string {
	return c.GetString(ctxSessionIDKey)
}

func (s *Server) runner(c *gin.Context) *workflow.Runner {
	return workflow.NewRunner(session(c), s.deps)
}
