package domain

import "time"

// SessionStatus is the position of a user session in the OAuth handshake
type SessionStatus string

const (
	SessionUnauthenticated SessionStatus = "unauthenticated"
	SessionPending         SessionStatus = "pending"
	SessionAuthenticated   SessionStatus = "authenticated"
)

// AuthSession is the credential bundle issued by Shopify at the end of the OAuth flow.
// It is never mutated once stored and carries no expiry or refresh information.
type AuthSession struct {
	Shop        string    `json:"shop"`
	AccessToken string    `json:"access_token"`
	Scopes      []string  `json:"scopes"`
	IsOnline    bool      `json:"is_online"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserSession represents a server-side user session, identified by the session cookie
type UserSession struct {
	ID          string       `json:"id"`
	State       string       `json:"state,omitempty"`        // pending OAuth state
	PendingShop string       `json:"pending_shop,omitempty"` // shop the pending handshake targets
	Auth        *AuthSession `json:"auth,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// NewUserSession creates an unauthenticated session with the given id
func NewUserSession(id string) *UserSession {
	now := time.Now()
	return &UserSession{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Status derives the handshake status from the stored fields
func (s *UserSession) Status() SessionStatus {
	if s == nil {
		return SessionUnauthenticated
	}
	if s.Auth != nil {
		return SessionAuthenticated
	}
	if s.State != "" {
		return SessionPending
	}
	return SessionUnauthenticated
}

// BeginHandshake moves the session to Pending for the given shop and state
func (s *UserSession) BeginHandshake(shop, state string) {
	s.State = state
	s.PendingShop = shop
	s.UpdatedAt = time.Now()
}

// CompleteHandshake stores the AuthSession and clears the pending handshake
func (s *UserSession) CompleteHandshake(auth *AuthSession) {
	s.Auth = auth
	s.State = ""
	s.PendingShop = ""
	s.UpdatedAt = time.Now()
}
