package application

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"

	"shopify-sync/internal/domain"
	"shopify-sync/internal/ports"

	goshopify "github.com/bold-commerce/go-shopify/v4"
	"github.com/rs/zerolog"
)

// AuthService drives the OAuth handshake for a user session
type AuthService struct {
	oauth       ports.ShopifyAuth
	sessions    ports.SessionStore
	defaultShop string
	logger      zerolog.Logger
	newState    func() (string, error)
}

// NewAuthService creates a new auth service.
// defaultShop is used when the install request names no shop.
func NewAuthService(
	oauth ports.ShopifyAuth,
	sessions ports.SessionStore,
	defaultShop string,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		oauth:       oauth,
		sessions:    sessions,
		defaultShop: defaultShop,
		logger:      logger,
		newState:    generateState,
	}
}

// Begin starts a handshake for the session and returns the consent URL to redirect to.
// The session is only moved to Pending once the URL has been built.
func (s *AuthService) Begin(ctx context.Context, sessionID string, shop string) (string, error) {
	if shop == "" {
		shop = s.defaultShop
	}
	shop = goshopify.ShopFullName(shop)
	if !isValidShopDomain(shop) {
		return "", fmt.Errorf("%w: %w: %q", domain.ErrAuthFlow, domain.ErrInvalidShop, shop)
	}

	state, err := s.newState()
	if err != nil {
		return "", fmt.Errorf("%w: failed to generate state: %w", domain.ErrAuthFlow, err)
	}

	authURL, err := s.oauth.AuthorizeURL(shop, state)
	if err != nil {
		return "", fmt.Errorf("%w: failed to build authorization URL: %w", domain.ErrAuthFlow, err)
	}

	session, err := s.load(ctx, sessionID)
	if err != nil {
		return "", err
	}
	session.BeginHandshake(shop, state)
	if err := s.sessions.Save(ctx, session); err != nil {
		return "", fmt.Errorf("%w: failed to save session: %w", domain.ErrAuthFlow, err)
	}

	s.logger.Info().
		Str("shop", shop).
		Str("sessionId", sessionID).
		Msg("OAuth handshake started")

	return authURL, nil
}

// Callback completes the handshake from the callback request URL and stores the AuthSession.
// On any failure the session is left as it was.
func (s *AuthService) Callback(ctx context.Context, sessionID string, callbackURL *url.URL) (*domain.AuthSession, error) {
	if err := s.oauth.VerifyCallback(callbackURL); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAuthFlow, err)
	}

	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status() != domain.SessionPending {
		return nil, fmt.Errorf("%w: %w: no handshake in progress", domain.ErrAuthFlow, domain.ErrInvalidState)
	}

	query := callbackURL.Query()
	if query.Get("state") != session.State {
		return nil, fmt.Errorf("%w: %w", domain.ErrAuthFlow, domain.ErrInvalidState)
	}
	shop := query.Get("shop")
	if shop != session.PendingShop {
		return nil, fmt.Errorf("%w: %w: callback for %q, expected %q", domain.ErrAuthFlow, domain.ErrInvalidShop, shop, session.PendingShop)
	}
	code := query.Get("code")
	if code == "" {
		return nil, fmt.Errorf("%w: missing authorization code", domain.ErrAuthFlow)
	}

	auth, err := s.oauth.ExchangeCode(ctx, shop, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAuthFlow, err)
	}

	session.CompleteHandshake(auth)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("%w: failed to save session: %w", domain.ErrAuthFlow, err)
	}

	s.logger.Info().
		Str("shop", auth.Shop).
		Strs("scopes", auth.Scopes).
		Bool("online", auth.IsOnline).
		Str("sessionId", sessionID).
		Msg("OAuth handshake completed")

	return auth, nil
}

// CurrentAuth returns the AuthSession bound to the session, or nil when it has none
func (s *AuthService) CurrentAuth(ctx context.Context, sessionID string) (*domain.AuthSession, error) {
	if sessionID == "" {
		return nil, nil
	}
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, nil
	}
	return session.Auth, nil
}

func (s *AuthService) load(ctx context.Context, sessionID string) (*domain.UserSession, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: missing session id", domain.ErrAuthFlow)
	}
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load session: %w", domain.ErrAuthFlow, err)
	}
	if session == nil {
		session = domain.NewUserSession(sessionID)
	}
	return session, nil
}

// generateState returns a random hex string used as the OAuth state parameter
func generateState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func isValidShopDomain(shop string) bool {
	if !strings.HasSuffix(shop, ".myshopify.com") {
		return false
	}
	if strings.ContainsAny(shop, "/ ") {
		return false
	}
	return len(shop) >= len("a.myshopify.com")
}
