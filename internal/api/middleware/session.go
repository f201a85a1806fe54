package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/iStefan20/YumTum/internal/metric"
	"github.com/iStefan20/YumTum/internal/session"
)

const (
	// SessionHeader carries the anonymous session id on every request
	SessionHeader     = "X-Session-ID"
	sessionContextKey = "session"
)

// SessionMiddleware resolves the caller's session from the X-Session-ID
// header, minting a fresh one when the header is absent or unknown. The
// resolved id is echoed back so clients can stick to it.
func SessionMiddleware(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, created := sessions.GetOrCreate(c.GetHeader(SessionHeader))
		if created {
			metric.SessionsActive.Set(float64(sessions.Len()))
		}
		c.Header(SessionHeader, sess.ID)
		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// GetSessionFromContext retrieves the session from the Gin context
func GetSessionFromContext(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}
