package webhook_handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"shopify-sync/internal/domain"
	"shopify-sync/internal/ports"

	"github.com/rs/zerolog"
)

var errMissingOrder = errors.New("webhook payload has no order")

// OrderCreatedHandler stores orders pushed on the orders/create topic
type OrderCreatedHandler struct {
	store  ports.DocumentStore
	logger zerolog.Logger
}

// NewOrderCreatedHandler creates a new orders/create webhook handler
func NewOrderCreatedHandler(store ports.DocumentStore, logger zerolog.Logger) *OrderCreatedHandler {
	return &OrderCreatedHandler{
		store:  store,
		logger: logger,
	}
}

// CanHandle returns true if this handler can process the given topic
func (h *OrderCreatedHandler) CanHandle(topic string) bool {
	return topic == domain.TopicOrdersCreate
}

// Handle inserts the payload's order as-is into the orders collection
func (h *OrderCreatedHandler) Handle(ctx context.Context, event *domain.WebhookEvent) error {
	var payload domain.OrderCreatedPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return fmt.Errorf("failed to parse order webhook payload: %w", err)
	}
	if len(payload.Order) == 0 || bytes.Equal(payload.Order, []byte("null")) {
		return errMissingOrder
	}

	var order map[string]any
	if err := json.Unmarshal(payload.Order, &order); err != nil {
		return fmt.Errorf("failed to parse order: %w", err)
	}

	h.logger.Info().
		Str("shop", payload.Shop).
		Interface("orderName", order["name"]).
		Msg("New order created")

	if err := h.store.InsertMany(ctx, domain.CollectionOrders, []any{domain.RawRecord(payload.Order)}); err != nil {
		return fmt.Errorf("%w: failed to store order: %w", domain.ErrPersistence, err)
	}
	return nil
}
