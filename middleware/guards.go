package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tawzeef/tawzeef/internal/auth"
)

const sessionContextKey = "session"

// Guard builds the named route guards from the token codec. Each guard
// re-runs the same stateless pipeline per request: read cookie, verify
// signature and shape, check the role set. Nothing is retained between
// requests.
//
// Failure semantics: an unauthenticated request is aborted with 401
// and an insufficient role with 403, so clients can tell "log in"
// apart from "not allowed". The guards never panic; all failure
// branches end in an aborted request with no session in the context.
type Guard struct {
	codec *auth.Codec
}

// NewGuard creates a Guard around the given codec.
func NewGuard(codec *auth.Codec) *Guard {
	return &Guard{codec: codec}
}

// SessionFromContext returns the session a guard stored for this
// request, or nil when no guard ran or the guard denied access.
// Handlers must treat nil as "no principal", never partially trust it.
func SessionFromContext(c *gin.Context) *auth.Session {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	sess, ok := v.(*auth.Session)
	if !ok {
		return nil
	}
	return sess
}

// WithSession attaches the session to the context when the request
// carries a valid token, and lets the request through either way. For
// public routes that show more to an authenticated caller, such as an
// owner reading their own unpublished job.
func (g *Guard) WithSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess := g.codec.FromRequest(c.Request); sess != nil {
			c.Set(sessionContextKey, sess)
		}
		c.Next()
	}
}

// RequireAuth admits any authenticated principal; role is decided
// downstream by the handler.
func (g *Guard) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := g.codec.FromRequest(c.Request)
		if sess == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// RequireAdmin admits ADMIN only.
func (g *Guard) RequireAdmin() gin.HandlerFunc {
	return g.requireRoles(auth.RoleAdmin)
}

// RequireEmployer admits EMPLOYER, and ADMIN as a superset capability.
func (g *Guard) RequireEmployer() gin.HandlerFunc {
	return g.requireRoles(auth.RoleEmployer, auth.RoleAdmin)
}

// RequireCandidate admits CANDIDATE, and ADMIN as a superset capability.
func (g *Guard) RequireCandidate() gin.HandlerFunc {
	return g.requireRoles(auth.RoleCandidate, auth.RoleAdmin)
}

func (g *Guard) requireRoles(allowed ...auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := g.codec.FromRequest(c.Request)
		if sess == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if !auth.IsAuthorized(sess, allowed...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Set(sessionContextKey, sess)
		c.Next()
	}
}
