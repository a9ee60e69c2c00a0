package application

import (
	"context"
	"errors"
	"fmt"

	"shopify-sync/internal/domain"
	"shopify-sync/internal/ports"

	"github.com/rs/zerolog"
)

// Resource names used in logs and metrics
const (
	ResourceProducts    = "products"
	ResourceOrders      = "orders"
	ResourceDraftOrders = "draft_orders"
	ResourceCustomers   = "customers"
)

// SyncService pulls one page of a Shopify resource and persists it.
// Every sync is an unconditional insert: running it twice stores the page twice.
type SyncService struct {
	clients ports.ResourceClientFactory
	store   ports.DocumentStore
	metrics ports.SyncMetrics
	logger  zerolog.Logger
}

// NewSyncService creates a new sync service
func NewSyncService(
	clients ports.ResourceClientFactory,
	store ports.DocumentStore,
	metrics ports.SyncMetrics,
	logger zerolog.Logger,
) *SyncService {
	return &SyncService{
		clients: clients,
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// SyncProducts fetches products and stores them as returned
func (s *SyncService) SyncProducts(ctx context.Context, auth *domain.AuthSession) ([]domain.RawRecord, error) {
	return s.syncRaw(ctx, auth, ResourceProducts, domain.CollectionProducts, ports.ResourceClient.Products)
}

// SyncOrders fetches orders of any status and stores them as returned
func (s *SyncService) SyncOrders(ctx context.Context, auth *domain.AuthSession) ([]domain.RawRecord, error) {
	return s.syncRaw(ctx, auth, ResourceOrders, domain.CollectionOrders, ports.ResourceClient.Orders)
}

// SyncDraftOrders fetches draft orders, normalizes them and stores the normalized records
func (s *SyncService) SyncDraftOrders(ctx context.Context, auth *domain.AuthSession) ([]domain.DraftOrder, error) {
	client, err := s.clientFor(auth, ResourceDraftOrders)
	if err != nil {
		return nil, err
	}

	raws, err := client.DraftOrders(ctx)
	if err != nil {
		return nil, s.upstreamFailure(ResourceDraftOrders, auth.Shop, err)
	}

	normalized := NormalizeDraftOrders(raws)
	if err := s.persist(ctx, ResourceDraftOrders, domain.CollectionDraftOrders, auth.Shop, toDocuments(normalized)); err != nil {
		return nil, err
	}
	return normalized, nil
}

// ListCustomers fetches customers without persisting them
func (s *SyncService) ListCustomers(ctx context.Context, auth *domain.AuthSession) ([]domain.RawRecord, error) {
	client, err := s.clientFor(auth, ResourceCustomers)
	if err != nil {
		return nil, err
	}

	customers, err := client.Customers(ctx)
	if err != nil {
		return nil, s.upstreamFailure(ResourceCustomers, auth.Shop, err)
	}

	s.metrics.RecordSync(ResourceCustomers, len(customers))
	return customers, nil
}

func (s *SyncService) syncRaw(
	ctx context.Context,
	auth *domain.AuthSession,
	resource, collection string,
	fetch func(ports.ResourceClient, context.Context) ([]domain.RawRecord, error),
) ([]domain.RawRecord, error) {
	client, err := s.clientFor(auth, resource)
	if err != nil {
		return nil, err
	}

	records, err := fetch(client, ctx)
	if err != nil {
		return nil, s.upstreamFailure(resource, auth.Shop, err)
	}

	if err := s.persist(ctx, resource, collection, auth.Shop, toDocuments(records)); err != nil {
		return nil, err
	}
	return records, nil
}

// clientFor enforces the session gate; no remote call is made without an AuthSession
func (s *SyncService) clientFor(auth *domain.AuthSession, resource string) (ports.ResourceClient, error) {
	if auth == nil {
		s.metrics.RecordSyncFailure(resource, "unauthenticated")
		return nil, domain.ErrNotAuthenticated
	}

	client, err := s.clients.ForSession(auth)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			s.metrics.RecordSyncFailure(resource, "unauthenticated")
			return nil, err
		}
		return nil, s.upstreamFailure(resource, auth.Shop, err)
	}
	return client, nil
}

func (s *SyncService) persist(ctx context.Context, resource, collection, shop string, docs []any) error {
	if len(docs) == 0 {
		s.logger.Info().Str("resource", resource).Str("shop", shop).Msg("Remote page empty, nothing to store")
		s.metrics.RecordSync(resource, 0)
		return nil
	}

	if err := s.store.InsertMany(ctx, collection, docs); err != nil {
		s.logger.Error().
			Err(err).
			Str("resource", resource).
			Str("collection", collection).
			Str("shop", shop).
			Msg("Failed to store records")
		s.metrics.RecordSyncFailure(resource, "persistence")
		return fmt.Errorf("%w: failed to store %s: %w", domain.ErrPersistence, resource, err)
	}

	s.logger.Info().
		Str("resource", resource).
		Str("collection", collection).
		Str("shop", shop).
		Int("count", len(docs)).
		Msg("Stored records")
	s.metrics.RecordSync(resource, len(docs))
	return nil
}

func (s *SyncService) upstreamFailure(resource, shop string, err error) error {
	s.logger.Error().
		Err(err).
		Str("resource", resource).
		Str("shop", shop).
		Msg("Failed to fetch from Shopify")
	s.metrics.RecordSyncFailure(resource, "upstream")
	return fmt.Errorf("%w: failed to fetch %s: %w", domain.ErrUpstream, resource, err)
}

func toDocuments[T any](items []T) []any {
	docs := make([]any, 0, len(items))
	for _, item := range items {
		docs = append(docs, item)
	}
	return docs
}
