package api

import (
	"io"
	"net/http"

	"shopify-sync/internal/application"
	"shopify-sync/internal/domain"

	"github.com/rs/zerolog"
)

// maxWebhookBody bounds the payload read from Shopify
const maxWebhookBody = 5 << 20

// WebhookHandler godoc
// @Summary      Receive Shopify webhooks
// @Description  Stores the order of orders/create pushes; other topics are acknowledged
// @Tags         webhooks
// @Accept       json
// @Param        X-Shopify-Topic header string true "Webhook topic"
// @Success      200 {string} string
// @Failure      500 {string} string
// @Router       /webhooks/orders-create [post]
func WebhookHandler(dispatcher *application.WebhookDispatcher, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		defer r.Body.Close()

		payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
		if err != nil {
			logger.Error().Err(err).Msg("Error processing webhook")
			http.Error(w, "Error processing webhook", http.StatusInternalServerError)
			return
		}

		event := &domain.WebhookEvent{
			Topic:   r.Header.Get("X-Shopify-Topic"),
			Shop:    r.Header.Get("X-Shopify-Shop-Domain"),
			Payload: payload,
		}

		logger.Info().
			Str("topic", event.Topic).
			Str("shop", event.Shop).
			Bytes("payload", payload).
			Msg("Received Shopify webhook")

		if err := dispatcher.Dispatch(ctx, event); err != nil {
			logger.Error().
				Err(err).
				Str("topic", event.Topic).
				Str("shop", event.Shop).
				Msg("Error processing webhook")
			http.Error(w, "Error processing webhook", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Webhook received"))
	}
}
