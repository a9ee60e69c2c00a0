package api

import (
	"encoding/json"
	"net/http"

	"shopify-sync/internal/application"
	"shopify-sync/internal/infrastructure/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterConfig carries the dependencies of the HTTP surface
type RouterConfig struct {
	Auth           *application.AuthService
	Sync           *application.SyncService
	Webhooks       *application.WebhookDispatcher
	Sessions       *SessionCookies
	Metrics        *metrics.Metrics
	AllowedOrigins []string
	SwaggerFile    string
	Logger         zerolog.Logger
}

// NewRouter builds the chi router with every route of the service
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cfg.Metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", cfg.Metrics.Handler())

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Get("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		http.ServeFile(w, r, cfg.SwaggerFile)
	})

	// Shopify pushes carry no session
	r.Post("/webhooks/orders-create", WebhookHandler(cfg.Webhooks, cfg.Logger))

	// Routes bound to the browser session
	r.Group(func(r chi.Router) {
		r.Use(cfg.Sessions.Middleware)

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("Hello"))
		})

		r.Get("/auth/shopify", AuthBeginHandler(cfg.Auth, cfg.Logger))
		r.Get("/auth/shopify/callback", AuthCallbackHandler(cfg.Auth, cfg.Logger))

		r.Get("/products", ProductsHandler(cfg.Auth, cfg.Sync, cfg.Logger))
		r.Get("/orders", OrdersHandler(cfg.Auth, cfg.Sync, cfg.Logger))
		r.Get("/do", DraftOrdersHandler(cfg.Auth, cfg.Sync, cfg.Logger))
		r.Get("/customers", CustomersHandler(cfg.Auth, cfg.Sync, cfg.Logger))
	})

	return r
}
