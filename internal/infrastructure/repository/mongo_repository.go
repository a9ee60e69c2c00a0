package repository

import (
	"context"
	"fmt"
	"time"

	"shopify-sync/internal/domain"
	"shopify-sync/internal/infrastructure/repository/entity"
	"shopify-sync/internal/ports"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collectionInserter is the part of *mongo.Collection used by the store
type collectionInserter interface {
	InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error)
}

// MongoDocumentStore implements DocumentStore using MongoDB
type MongoDocumentStore struct {
	collection func(name string) collectionInserter
	now        func() time.Time
}

// NewMongoDocumentStore creates a new MongoDB document store
func NewMongoDocumentStore(db *mongo.Database) ports.DocumentStore {
	return &MongoDocumentStore{
		collection: func(name string) collectionInserter { return db.Collection(name) },
		now:        time.Now,
	}
}

// timestamped lists the collections whose documents carry createdAt/updatedAt
var timestamped = map[string]bool{
	domain.CollectionProducts: true,
	domain.CollectionOrders:   true,
}

// InsertMany inserts the records as new documents. No upsert, no dedup: a record
// inserted twice yields two documents.
func (s *MongoDocumentStore) InsertMany(ctx context.Context, collection string, records []any) error {
	if len(records) == 0 {
		return nil
	}

	now := s.now()
	docs := make([]interface{}, 0, len(records))
	for i, record := range records {
		doc, err := entity.ToDocument(record)
		if err != nil {
			return fmt.Errorf("failed to prepare record %d for %s: %w", i, collection, err)
		}
		if timestamped[collection] {
			doc = entity.WithTimestamps(doc, now)
		}
		docs = append(docs, doc)
	}

	if _, err := s.collection(collection).InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", collection, err)
	}

	return nil
}
