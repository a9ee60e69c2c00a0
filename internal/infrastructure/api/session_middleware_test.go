package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopify-sync/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithSession(c *SessionCookies, cookie *http.Cookie) (string, *httptest.ResponseRecorder) {
	var seen string
	h := c.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = domain.GetSessionIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec
}

func TestSessionCookies_IssuesNewSession(t *testing.T) {
	c := NewSessionCookies("secret", 24*time.Hour, true)

	id, rec := serveWithSession(c, nil)

	_, err := uuid.Parse(id)
	require.NoError(t, err)

	cookie := sessionCookieFrom(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, c.sign(id), cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 86400, cookie.MaxAge)
}

func TestSessionCookies_ReusesValidCookie(t *testing.T) {
	c := NewSessionCookies("secret", 0, true)
	id := uuid.NewString()

	seen, rec := serveWithSession(c, &http.Cookie{Name: SessionCookieName, Value: c.sign(id)})

	assert.Equal(t, id, seen)
	assert.Nil(t, sessionCookieFrom(rec))
}

func TestSessionCookies_RejectsInvalidCookies(t *testing.T) {
	c := NewSessionCookies("secret", 0, true)
	other := NewSessionCookies("other-secret", 0, true)
	id := uuid.NewString()

	tests := []struct {
		name  string
		value string
	}{
		{name: "unsigned", value: id},
		{name: "wrong secret", value: other.sign(id)},
		{name: "forged signature", value: id + ".abc"},
		{name: "signed non uuid", value: c.sign("admin")},
		{name: "empty id", value: ".abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen, rec := serveWithSession(c, &http.Cookie{Name: SessionCookieName, Value: tt.value})

			assert.NotEqual(t, id, seen)
			_, err := uuid.Parse(seen)
			assert.NoError(t, err)
			assert.NotNil(t, sessionCookieFrom(rec))
		})
	}
}
