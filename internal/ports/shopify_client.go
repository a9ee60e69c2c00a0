package ports

import (
	"context"
	"net/url"

	"shopify-sync/internal/domain"
)

// ShopifyAuth defines the OAuth handshake operations against Shopify
type ShopifyAuth interface {
	// AuthorizeURL builds the consent URL the merchant is redirected to
	AuthorizeURL(shop string, state string) (string, error)
	// VerifyCallback checks the HMAC signature Shopify appends to the callback URL
	VerifyCallback(u *url.URL) error
	// ExchangeCode trades the authorization code for an AuthSession
	ExchangeCode(ctx context.Context, shop string, code string) (*domain.AuthSession, error)
}

// ResourceClient performs authenticated reads of Shopify resources for one AuthSession.
// Each method issues exactly one remote call and returns the first page only.
type ResourceClient interface {
	Products(ctx context.Context) ([]domain.RawRecord, error)
	Orders(ctx context.Context) ([]domain.RawRecord, error)
	DraftOrders(ctx context.Context) ([]domain.RawDraftOrder, error)
	Customers(ctx context.Context) ([]domain.RawRecord, error)
}

// ResourceClientFactory builds a ResourceClient scoped to an AuthSession
type ResourceClientFactory interface {
	ForSession(session *domain.AuthSession) (ResourceClient, error)
}

// WebhookHandler processes webhook events for the topics it accepts
type WebhookHandler interface {
	CanHandle(topic string) bool
	Handle(ctx context.Context, event *domain.WebhookEvent) error
}
