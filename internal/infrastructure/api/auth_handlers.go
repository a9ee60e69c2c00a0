package api

import (
	"net/http"

	"shopify-sync/internal/application"
	"shopify-sync/internal/domain"

	"github.com/rs/zerolog"
)

// AuthBeginHandler godoc
// @Summary      Begin Shopify OAuth
// @Description  Starts the OAuth handshake and redirects to the Shopify consent screen
// @Tags         auth
// @Param        shop query string false "Shop domain, defaults to the configured shop"
// @Success      302
// @Failure      500 {string} string
// @Router       /auth/shopify [get]
func AuthBeginHandler(auth *application.AuthService, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		authURL, err := auth.Begin(ctx, domain.GetSessionIDFromContext(ctx), r.URL.Query().Get("shop"))
		if err != nil {
			logger.Error().Err(err).Msg("Failed to initiate authentication")
			http.Error(w, "Failed to initiate authentication", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, authURL, http.StatusFound)
	}
}

// AuthCallbackHandler godoc
// @Summary      Complete Shopify OAuth
// @Description  Verifies the callback, exchanges the code and redirects to the landing page
// @Tags         auth
// @Success      302
// @Failure      500 {string} string
// @Router       /auth/shopify/callback [get]
func AuthCallbackHandler(auth *application.AuthService, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		authSession, err := auth.Callback(ctx, domain.GetSessionIDFromContext(ctx), r.URL)
		if err != nil {
			logger.Error().Err(err).Str("shop", r.URL.Query().Get("shop")).Msg("Authentication failed")
			http.Error(w, "Authentication failed", http.StatusInternalServerError)
			return
		}

		logger.Info().Str("shop", authSession.Shop).Msg("Shopify session established")
		http.Redirect(w, r, "/", http.StatusFound)
	}
}
