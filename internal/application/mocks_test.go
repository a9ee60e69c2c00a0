package application

import (
	"context"
	"net/url"
	"sync"

	"shopify-sync/internal/domain"
	"shopify-sync/internal/ports"

	"github.com/stretchr/testify/mock"
)

// ----------------------------------------------------------------------------
// Resource client mocks
// ----------------------------------------------------------------------------

type mockClientFactory struct {
	mock.Mock
}

func (m *mockClientFactory) ForSession(session *domain.AuthSession) (ports.ResourceClient, error) {
	args := m.Called(session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.ResourceClient), args.Error(1)
}

type mockResourceClient struct {
	mock.Mock
}

func (m *mockResourceClient) Products(ctx context.Context) ([]domain.RawRecord, error) {
	args := m.Called(ctx)
	return recordsArg(args, 0), args.Error(1)
}

func (m *mockResourceClient) Orders(ctx context.Context) ([]domain.RawRecord, error) {
	args := m.Called(ctx)
	return recordsArg(args, 0), args.Error(1)
}

func (m *mockResourceClient) Customers(ctx context.Context) ([]domain.RawRecord, error) {
	args := m.Called(ctx)
	return recordsArg(args, 0), args.Error(1)
}

func (m *mockResourceClient) DraftOrders(ctx context.Context) ([]domain.RawDraftOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawDraftOrder), args.Error(1)
}

func recordsArg(args mock.Arguments, i int) []domain.RawRecord {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).([]domain.RawRecord)
}

// ----------------------------------------------------------------------------
// Store mocks
// ----------------------------------------------------------------------------

type mockDocumentStore struct {
	mock.Mock
}

func (m *mockDocumentStore) InsertMany(ctx context.Context, collection string, records []any) error {
	args := m.Called(ctx, collection, records)
	return args.Error(0)
}

type mockSessionStore struct {
	mock.Mock
}

func (m *mockSessionStore) Get(ctx context.Context, id string) (*domain.UserSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserSession), args.Error(1)
}

func (m *mockSessionStore) Save(ctx context.Context, session *domain.UserSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

// ----------------------------------------------------------------------------
// OAuth mock
// ----------------------------------------------------------------------------

type mockShopifyAuth struct {
	mock.Mock
}

func (m *mockShopifyAuth) AuthorizeURL(shop string, state string) (string, error) {
	args := m.Called(shop, state)
	return args.String(0), args.Error(1)
}

func (m *mockShopifyAuth) VerifyCallback(u *url.URL) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *mockShopifyAuth) ExchangeCode(ctx context.Context, shop string, code string) (*domain.AuthSession, error) {
	args := m.Called(ctx, shop, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthSession), args.Error(1)
}

// ----------------------------------------------------------------------------
// Metrics recorder
// ----------------------------------------------------------------------------

type recordedMetrics struct {
	mu       sync.Mutex
	synced   map[string]int
	failures map[string][]string
}

func newRecordedMetrics() *recordedMetrics {
	return &recordedMetrics{
		synced:   make(map[string]int),
		failures: make(map[string][]string),
	}
}

func (r *recordedMetrics) RecordSync(resource string, records int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.synced[resource] += records
}

func (r *recordedMetrics) RecordSyncFailure(resource string, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures[resource] = append(r.failures[resource], reason)
}
