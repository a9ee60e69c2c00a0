package domain

import "encoding/json"

// Collection names used in the document store
const (
	CollectionProducts    = "products"
	CollectionOrders      = "orders"
	CollectionDraftOrders = "draftorders"
)

// RawRecord is a remote resource exactly as Shopify returned it
type RawRecord = json.RawMessage
