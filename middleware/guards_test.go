package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tawzeef/tawzeef/internal/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const guardTestSecret = "guard-test-secret"

// newGuardedRouter mounts one route per guard; each handler echoes the
// session subject so tests can observe what the guard passed through.
func newGuardedRouter(codec *auth.Codec) *gin.Engine {
	guard := NewGuard(codec)

	echo := func(c *gin.Context) {
		sess := SessionFromContext(c)
		if sess == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "guard passed without session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"subject": sess.Subject, "role": string(sess.Role)})
	}

	r := gin.New()
	r.GET("/any", guard.RequireAuth(), echo)
	r.GET("/admin", guard.RequireAdmin(), echo)
	r.GET("/employer", guard.RequireEmployer(), echo)
	r.GET("/candidate", guard.RequireCandidate(), echo)
	return r
}

func issueFor(t *testing.T, codec *auth.Codec, role auth.Role) string {
	t.Helper()
	token, err := codec.Issue(auth.Claims{
		Subject:     "u-" + string(role),
		Role:        role,
		DisplayName: "Test",
		Email:       "t@x.com",
	})
	require.NoError(t, err)
	return token
}

func TestGuards(t *testing.T) {
	codec := auth.NewCodec(guardTestSecret, 7*24*time.Hour)
	router := newGuardedRouter(codec)

	adminTok := issueFor(t, codec, auth.RoleAdmin)
	employerTok := issueFor(t, codec, auth.RoleEmployer)
	candidateTok := issueFor(t, codec, auth.RoleCandidate)

	tests := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{"auth: no cookie", "/any", "", http.StatusUnauthorized},
		{"auth: garbage token", "/any", "garbage", http.StatusUnauthorized},
		{"auth: candidate passes", "/any", candidateTok, http.StatusOK},

		{"admin: no cookie", "/admin", "", http.StatusUnauthorized},
		{"admin: garbage token", "/admin", "garbage", http.StatusUnauthorized},
		{"admin: employer forbidden", "/admin", employerTok, http.StatusForbidden},
		{"admin: candidate forbidden", "/admin", candidateTok, http.StatusForbidden},
		{"admin: admin passes", "/admin", adminTok, http.StatusOK},

		{"employer: employer passes", "/employer", employerTok, http.StatusOK},
		{"employer: admin superset", "/employer", adminTok, http.StatusOK},
		{"employer: candidate forbidden", "/employer", candidateTok, http.StatusForbidden},

		{"candidate: candidate passes", "/candidate", candidateTok, http.StatusOK},
		{"candidate: admin superset", "/candidate", adminTok, http.StatusOK},
		{"candidate: employer forbidden", "/candidate", employerTok, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: tt.token})
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

// WithSession never blocks: the request goes through with or without a
// valid token, and the session lands in the context only when the
// token verifies.
func TestWithSession(t *testing.T) {
	codec := auth.NewCodec(guardTestSecret, 7*24*time.Hour)
	guard := NewGuard(codec)

	r := gin.New()
	r.GET("/public", guard.WithSession(), func(c *gin.Context) {
		sess := SessionFromContext(c)
		if sess == nil {
			c.JSON(http.StatusOK, gin.H{"subject": ""})
			return
		}
		c.JSON(http.StatusOK, gin.H{"subject": sess.Subject})
	})

	employerTok := issueFor(t, codec, auth.RoleEmployer)

	tests := []struct {
		name    string
		token   string
		subject string
	}{
		{"no cookie", "", ""},
		{"garbage token", "garbage", ""},
		{"valid token", employerTok, "u-EMPLOYER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/public", nil)
			if tt.token != "" {
				req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: tt.token})
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `"subject":"`+tt.subject+`"`)
		})
	}
}

// Missing cookie, forged token and expired token all surface as the
// same 401 body: nothing distinguishes why the session was absent.
func TestGuardUniformFailureShape(t *testing.T) {
	codec := auth.NewCodec(guardTestSecret, 7*24*time.Hour)
	router := newGuardedRouter(codec)

	past := time.Now().Add(-30 * 24 * time.Hour)
	expiredCodec := codec.WithClock(func() time.Time { return past })
	expiredTok := issueFor(t, expiredCodec, auth.RoleAdmin)

	forgedCodec := auth.NewCodec("some-other-secret", 7*24*time.Hour)
	forgedTok := issueFor(t, forgedCodec, auth.RoleAdmin)

	var bodies []string
	for _, token := range []string{"", forgedTok, expiredTok} {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if token != "" {
			req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		bodies = append(bodies, w.Body.String())
	}

	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[0], bodies[2])
}

func TestSessionFromContextWithoutGuard(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, SessionFromContext(c))
}
