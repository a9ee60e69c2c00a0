package ports

import (
	"context"

	"shopify-sync/internal/domain"
)

// DocumentStore defines the schema-less persistence used by the sync flows.
// Records may be domain.RawRecord values or any JSON-marshalable struct.
type DocumentStore interface {
	// InsertMany inserts every record into the named collection as new documents
	InsertMany(ctx context.Context, collection string, records []any) error
}

// SessionStore keeps one server-side session per session id
type SessionStore interface {
	// Get returns the session or nil when the id is unknown
	Get(ctx context.Context, id string) (*domain.UserSession, error)
	Save(ctx context.Context, session *domain.UserSession) error
}
