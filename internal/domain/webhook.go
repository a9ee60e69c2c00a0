package domain

import "encoding/json"

// TopicOrdersCreate is the only webhook topic with a side effect
const TopicOrdersCreate = "orders/create"

// WebhookEvent represents a webhook push received from Shopify
type WebhookEvent struct {
	Topic   string
	Shop    string
	Payload []byte
}

// OrderCreatedPayload is the body accepted on the orders/create topic
type OrderCreatedPayload struct {
	Shop  string          `json:"shop"`
	Order json.RawMessage `json:"order"`
}
