package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"shopify-sync/internal/application"
	"shopify-sync/internal/domain"

	"github.com/rs/zerolog"
)

const msgNotAuthenticated = "Session not found. Please authenticate first."

// ProductsHandler godoc
// @Summary      Sync products
// @Description  Fetches the first page of products, stores them and returns them
// @Tags         sync
// @Produce      json
// @Success      200 {array} object
// @Failure      401 {string} string
// @Failure      500 {string} string
// @Router       /products [get]
func ProductsHandler(auth *application.AuthService, sync *application.SyncService, logger zerolog.Logger) http.HandlerFunc {
	return sessionGated(auth, logger, "Failed to fetch or store products", sync.SyncProducts)
}

// OrdersHandler godoc
// @Summary      Sync orders
// @Description  Fetches the first page of orders of any status, stores them and returns them
// @Tags         sync
// @Produce      json
// @Success      200 {array} object
// @Failure      401 {string} string
// @Failure      500 {string} string
// @Router       /orders [get]
func OrdersHandler(auth *application.AuthService, sync *application.SyncService, logger zerolog.Logger) http.HandlerFunc {
	return sessionGated(auth, logger, "Failed to fetch or store orders", sync.SyncOrders)
}

// DraftOrdersHandler godoc
// @Summary      Sync draft orders
// @Description  Fetches the first page of draft orders, normalizes, stores and returns them
// @Tags         sync
// @Produce      json
// @Success      200 {array} domain.DraftOrder
// @Failure      401 {string} string
// @Failure      500 {string} string
// @Router       /do [get]
func DraftOrdersHandler(auth *application.AuthService, sync *application.SyncService, logger zerolog.Logger) http.HandlerFunc {
	return sessionGated(auth, logger, "Failed to fetch or store draft orders", sync.SyncDraftOrders)
}

// CustomersHandler godoc
// @Summary      List customers
// @Description  Fetches the first page of customers without storing them
// @Tags         sync
// @Produce      json
// @Success      200 {array} object
// @Failure      401 {string} string
// @Failure      500 {string} string
// @Router       /customers [get]
func CustomersHandler(auth *application.AuthService, sync *application.SyncService, logger zerolog.Logger) http.HandlerFunc {
	return sessionGated(auth, logger, "Failed to fetch customers", sync.ListCustomers)
}

// sessionGated is the skeleton shared by the sync routes: resolve the AuthSession of the
// caller, answer 401 without touching Shopify when there is none, otherwise run the sync.
func sessionGated[T any](auth *application.AuthService, logger zerolog.Logger, failureMsg string, run func(context.Context, *domain.AuthSession) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sessionID := domain.GetSessionIDFromContext(ctx)

		authSession, err := auth.CurrentAuth(ctx, sessionID)
		if err != nil {
			logger.Error().Err(err).Str("path", r.URL.Path).Msg("Failed to load session")
			http.Error(w, failureMsg, http.StatusInternalServerError)
			return
		}
		if authSession == nil {
			http.Error(w, msgNotAuthenticated, http.StatusUnauthorized)
			return
		}

		records, err := run(ctx, authSession)
		if err != nil {
			if errors.Is(err, domain.ErrNotAuthenticated) {
				http.Error(w, msgNotAuthenticated, http.StatusUnauthorized)
				return
			}
			logger.Error().Err(err).Str("path", r.URL.Path).Str("shop", authSession.Shop).Msg(failureMsg)
			http.Error(w, failureMsg, http.StatusInternalServerError)
			return
		}

		if records == nil {
			records = []T{}
		}
		writeJSON(w, http.StatusOK, records, logger)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any, logger zerolog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("Failed to write response")
	}
}
