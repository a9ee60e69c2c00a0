package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// ToDocument converts a record to a BSON document preserving its JSON field order.
// Relaxed extended JSON keeps integers as int32/int64 instead of doubles.
func ToDocument(record any) (bson.D, error) {
	var raw []byte
	switch r := record.(type) {
	case json.RawMessage:
		raw = r
	case []byte:
		raw = r
	default:
		b, err := json.Marshal(record)
		if err != nil {
			return nil, fmt.Errorf("failed to encode record: %w", err)
		}
		raw = b
	}

	var doc bson.D
	if err := bson.UnmarshalExtJSON(raw, false, &doc); err != nil {
		return nil, fmt.Errorf("failed to convert record to document: %w", err)
	}
	return doc, nil
}

// WithTimestamps appends createdAt/updatedAt to a document
func WithTimestamps(doc bson.D, now time.Time) bson.D {
	return append(doc,
		bson.E{Key: "createdAt", Value: now},
		bson.E{Key: "updatedAt", Value: now},
	)
}
