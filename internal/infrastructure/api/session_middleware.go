package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"shopify-sync/internal/domain"

	"github.com/google/uuid"
)

// SessionCookieName is the cookie carrying the signed server-side session id
const SessionCookieName = "shopify_sync_sid"

// SessionCookies issues and verifies signed session id cookies.
// The cookie holds only the id; session state lives in the SessionStore.
type SessionCookies struct {
	secret []byte
	maxAge time.Duration
	secure bool
}

// NewSessionCookies creates the cookie codec. A zero maxAge issues browser-session cookies.
func NewSessionCookies(secret string, maxAge time.Duration, secure bool) *SessionCookies {
	return &SessionCookies{
		secret: []byte(secret),
		maxAge: maxAge,
		secure: secure,
	}
}

// Middleware resolves the session id from the cookie, issuing a new one when the cookie is
// missing or its signature does not verify. The id is put in the request context.
func (c *SessionCookies) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := "", false
		if cookie, err := r.Cookie(SessionCookieName); err == nil {
			id, ok = c.verify(cookie.Value)
		}
		if !ok {
			id = uuid.NewString()
			http.SetCookie(w, c.cookie(id))
		}

		next.ServeHTTP(w, r.WithContext(domain.WithSessionID(r.Context(), id)))
	})
}

func (c *SessionCookies) cookie(id string) *http.Cookie {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    c.sign(id),
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if c.maxAge > 0 {
		cookie.MaxAge = int(c.maxAge.Seconds())
	}
	return cookie
}

func (c *SessionCookies) sign(id string) string {
	return id + "." + c.mac(id)
}

func (c *SessionCookies) verify(value string) (string, bool) {
	i := strings.LastIndexByte(value, '.')
	if i <= 0 {
		return "", false
	}
	id, sig := value[:i], value[i+1:]
	if !hmac.Equal([]byte(sig), []byte(c.mac(id))) {
		return "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

func (c *SessionCookies) mac(id string) string {
	h := hmac.New(sha256.New, c.secret)
	h.Write([]byte(id))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}
