package auth

import (
	"net/http"
	"time"
)

// CookieName is the single session cookie carrying the signed token.
const CookieName = "tawzeef_session"

// FromRequest is the session extractor: it reads the session cookie
// and hands the raw token to the codec. An absent cookie is not an
// error, just "no session", and does not invoke the codec at all.
// Every call re-verifies the signature; nothing is cached.
func (c *Codec) FromRequest(r *http.Request) *Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	return c.Verify(cookie.Value)
}

// SetCookie issues the session cookie. HttpOnly and SameSite=Lax are
// mandatory; secure should be true outside local development. MaxAge
// matches the token's validity window.
func SetCookie(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie removes the session cookie on logout. There is no
// server-side revocation list; an unexpired token discarded here
// remains valid until its embedded expiry.
func ClearCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
