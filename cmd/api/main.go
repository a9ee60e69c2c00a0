package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopify-sync/internal/application"
	"shopify-sync/internal/application/webhook_handlers"
	"shopify-sync/internal/config"
	apiinfra "shopify-sync/internal/infrastructure/api"
	"shopify-sync/internal/infrastructure/metrics"
	"shopify-sync/internal/infrastructure/repository"
	"shopify-sync/internal/infrastructure/session"
	shopifyinfra "shopify-sync/internal/infrastructure/shopify"
	"shopify-sync/internal/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	// Initialize logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid configuration")
	}
	logger = logger.Level(cfg.LogLevel)

	// Connect to MongoDB before serving
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err == nil {
		err = client.Ping(connectCtx, nil)
	}
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())
	logger.Info().Str("database", cfg.MongoDatabase).Msg("Connected to MongoDB")

	documents := repository.NewMongoDocumentStore(client.Database(cfg.MongoDatabase))

	// Session store: Redis when configured, process memory otherwise
	var sessions ports.SessionStore
	if cfg.RedisURL != "" {
		redisStore, redisClient, err := session.NewRedisStore(cfg.RedisURL, cfg.SessionTTL)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer redisClient.Close()
		sessions = redisStore
		logger.Info().Msg("Using Redis session store")
	} else {
		sessions = session.NewInMemoryStore()
		logger.Warn().Msg("REDIS_URL not set, sessions are kept in memory")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Shopify adapters
	oauth := shopifyinfra.NewOAuth(
		cfg.ShopifyAPIKey,
		cfg.ShopifyAPISecret,
		cfg.ShopifyScopes,
		cfg.CallbackURL(),
		cfg.ShopifyOnlineTokens,
		logger,
	)
	clients := shopifyinfra.NewClientFactory(cfg.ShopifyAPIKey, cfg.ShopifyAPISecret, cfg.ShopifyAPIVersion, logger)

	// Application services
	authService := application.NewAuthService(oauth, sessions, cfg.ShopifyShop, logger)
	syncService := application.NewSyncService(clients, documents, m, logger)

	webhookDispatcher := application.NewWebhookDispatcher(logger)
	webhookDispatcher.RegisterHandler(webhook_handlers.NewOrderCreatedHandler(documents, logger))

	router := apiinfra.NewRouter(apiinfra.RouterConfig{
		Auth:           authService,
		Sync:           syncService,
		Webhooks:       webhookDispatcher,
		Sessions:       apiinfra.NewSessionCookies(cfg.SessionSecret, cfg.SessionTTL, true),
		Metrics:        m,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		SwaggerFile:    "./docs/swagger.json",
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("Starting API server")
		logger.Info().Msg("Swagger documentation available at " + cfg.AppURL + "/swagger/index.html")
		if err := srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("Shutting down server...")

	ctx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}
	logger.Info().Msg("Server exited gracefully")
}
