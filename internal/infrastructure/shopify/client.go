package shopify

import (
	"context"
	"fmt"

	"shopify-sync/internal/domain"
	"shopify-sync/internal/ports"

	goshopify "github.com/bold-commerce/go-shopify/v4"
	"github.com/rs/zerolog"
)

// Remote resource paths, relative to the versioned admin API prefix
const (
	productsPath    = "products.json"
	ordersPath      = "orders.json"
	draftOrdersPath = "draft_orders.json"
	customersPath   = "customers.json"
)

// orderListOptions widens the orders listing to every status; Shopify defaults to open only
type orderListOptions struct {
	Status string `url:"status,omitempty"`
}

// getter is the part of *goshopify.Client used by the resource client
type getter interface {
	Get(ctx context.Context, path string, resource, options interface{}) error
}

type clientFactory struct {
	app    goshopify.App
	opts   []goshopify.Option
	logger zerolog.Logger
}

// NewClientFactory creates a factory producing REST clients bound to an AuthSession.
// An empty apiVersion keeps the library default.
func NewClientFactory(apiKey, apiSecret, apiVersion string, logger zerolog.Logger) ports.ResourceClientFactory {
	var opts []goshopify.Option
	if apiVersion != "" {
		opts = append(opts, goshopify.WithVersion(apiVersion))
	}
	return &clientFactory{
		app: goshopify.App{
			ApiKey:    apiKey,
			ApiSecret: apiSecret,
		},
		opts:   opts,
		logger: logger,
	}
}

// ForSession creates a client for the shop and token carried by the session
func (f *clientFactory) ForSession(session *domain.AuthSession) (ports.ResourceClient, error) {
	if session == nil || session.AccessToken == "" {
		return nil, domain.ErrNotAuthenticated
	}
	client, err := goshopify.NewClient(f.app, session.Shop, session.AccessToken, f.opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return newResourceClient(client, session.Shop, f.logger), nil
}

type resourceClient struct {
	api    getter
	shop   string
	logger zerolog.Logger
}

func newResourceClient(api getter, shop string, logger zerolog.Logger) *resourceClient {
	return &resourceClient{
		api:    api,
		shop:   shop,
		logger: logger.With().Str("shop", shop).Logger(),
	}
}

// Products lists products as raw JSON objects
func (c *resourceClient) Products(ctx context.Context) ([]domain.RawRecord, error) {
	var resource struct {
		Products []domain.RawRecord `json:"products"`
	}
	if err := c.api.Get(ctx, productsPath, &resource, nil); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return nonNil(resource.Products), nil
}

// Orders lists orders of any status as raw JSON objects
func (c *resourceClient) Orders(ctx context.Context) ([]domain.RawRecord, error) {
	var resource struct {
		Orders []domain.RawRecord `json:"orders"`
	}
	if err := c.api.Get(ctx, ordersPath, &resource, orderListOptions{Status: "any"}); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return nonNil(resource.Orders), nil
}

// DraftOrders lists draft orders decoded into the normalizer input shape
func (c *resourceClient) DraftOrders(ctx context.Context) ([]domain.RawDraftOrder, error) {
	var resource struct {
		DraftOrders []domain.RawDraftOrder `json:"draft_orders"`
	}
	if err := c.api.Get(ctx, draftOrdersPath, &resource, nil); err != nil {
		return nil, fmt.Errorf("failed to list draft orders: %w", err)
	}
	c.logger.Debug().Int("count", len(resource.DraftOrders)).Msg("Fetched draft orders")
	if resource.DraftOrders == nil {
		return []domain.RawDraftOrder{}, nil
	}
	return resource.DraftOrders, nil
}

// Customers lists customers as raw JSON objects
func (c *resourceClient) Customers(ctx context.Context) ([]domain.RawRecord, error) {
	var resource struct {
		Customers []domain.RawRecord `json:"customers"`
	}
	if err := c.api.Get(ctx, customersPath, &resource, nil); err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return nonNil(resource.Customers), nil
}

func nonNil(records []domain.RawRecord) []domain.RawRecord {
	if records == nil {
		return []domain.RawRecord{}
	}
	return records
}
