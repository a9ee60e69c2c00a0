package application

import (
	"context"
	"errors"
	"testing"

	"shopify-sync/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	topic  string
	err    error
	events []*domain.WebhookEvent
}

func (h *recordingHandler) CanHandle(topic string) bool {
	return topic == h.topic
}

func (h *recordingHandler) Handle(ctx context.Context, event *domain.WebhookEvent) error {
	h.events = append(h.events, event)
	return h.err
}

func TestWebhookDispatcher_RoutesByTopic(t *testing.T) {
	orders := &recordingHandler{topic: "orders/create"}
	products := &recordingHandler{topic: "products/create"}
	d := NewWebhookDispatcher(zerolog.Nop())
	d.RegisterHandler(orders)
	d.RegisterHandler(products)

	event := &domain.WebhookEvent{Topic: "orders/create", Shop: "x"}
	require.NoError(t, d.Dispatch(context.Background(), event))

	require.Len(t, orders.events, 1)
	assert.Same(t, event, orders.events[0])
	assert.Empty(t, products.events)
}

func TestWebhookDispatcher_UnknownTopic(t *testing.T) {
	orders := &recordingHandler{topic: "orders/create"}
	d := NewWebhookDispatcher(zerolog.Nop())
	d.RegisterHandler(orders)

	err := d.Dispatch(context.Background(), &domain.WebhookEvent{Topic: "customers/create"})

	require.NoError(t, err)
	assert.Empty(t, orders.events)
}

func TestWebhookDispatcher_NoHandlers(t *testing.T) {
	d := NewWebhookDispatcher(zerolog.Nop())

	assert.NoError(t, d.Dispatch(context.Background(), &domain.WebhookEvent{Topic: "orders/create"}))
}

func TestWebhookDispatcher_HandlerError(t *testing.T) {
	failing := &recordingHandler{topic: "orders/create", err: errors.New("boom")}
	after := &recordingHandler{topic: "orders/create"}
	d := NewWebhookDispatcher(zerolog.Nop())
	d.RegisterHandler(failing)
	d.RegisterHandler(after)

	err := d.Dispatch(context.Background(), &domain.WebhookEvent{Topic: "orders/create"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Contains(t, err.Error(), "orders/create")
	assert.Empty(t, after.events)
}
