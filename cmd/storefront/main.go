package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	cartHttp "github.com/aarikaaura/storefront/internal/cart/delivery/http"
	cartrepo "github.com/aarikaaura/storefront/internal/cart/repository"
	cartcommand "github.com/aarikaaura/storefront/internal/cart/usecase/command"
	cartquery "github.com/aarikaaura/storefront/internal/cart/usecase/query"
	catalogHttp "github.com/aarikaaura/storefront/internal/catalog/delivery/http"
	catalogdomain "github.com/aarikaaura/storefront/internal/catalog/domain"
	catalogrepo "github.com/aarikaaura/storefront/internal/catalog/repository"
	catalogquery "github.com/aarikaaura/storefront/internal/catalog/usecase/query"
	"github.com/aarikaaura/storefront/internal/checkout"
	checkoutHttp "github.com/aarikaaura/storefront/internal/checkout/delivery/http"
	checkoutrepo "github.com/aarikaaura/storefront/internal/checkout/repository"
	"github.com/aarikaaura/storefront/internal/contact"
	contactHttp "github.com/aarikaaura/storefront/internal/contact/delivery/http"
	"github.com/aarikaaura/storefront/internal/contact/mailer"
	contactrepo "github.com/aarikaaura/storefront/internal/contact/repository"
	"github.com/aarikaaura/storefront/internal/middleware"
	"github.com/aarikaaura/storefront/internal/notification"
	notificationHttp "github.com/aarikaaura/storefront/internal/notification/delivery/http"
	wishlistHttp "github.com/aarikaaura/storefront/internal/wishlist/delivery/http"
	wishlistrepo "github.com/aarikaaura/storefront/internal/wishlist/repository"
	"github.com/aarikaaura/storefront/kafka"
	"github.com/aarikaaura/storefront/pkg/database"
	"github.com/aarikaaura/storefront/pkg/logger"
	"github.com/aarikaaura/storefront/pkg/storage"
	"github.com/aarikaaura/storefront/pkg/tracing"

	cartdomain "github.com/aarikaaura/storefront/internal/cart/domain"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "storefront-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting storefront service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Session state storage: redis when configured, in-memory otherwise
	var store storage.Store
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		store = storage.NewRedisStore(client)
		logger.Logger.Info().Str("addr", redisAddr).Msg("Using redis session storage")
	} else {
		store = storage.NewMemoryStore()
		logger.Logger.Info().Msg("Using in-memory session storage")
	}

	// Catalog: postgres-backed when DB_HOST is set, static seed otherwise
	var catalogRepo catalogdomain.Repository
	var contactArchive contact.Archive
	if os.Getenv("DB_HOST") != "" {
		dbConfig := database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "storefrontdb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		}

		db, err := database.NewGormConnection(dbConfig)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
		}

		sqlDB, err := db.DB()
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
		}
		defer sqlDB.Close()

		gormRepo := catalogrepo.NewGormRepository(db)
		if err := gormRepo.AutoMigrate(); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
		}
		catalogRepo = gormRepo

		archive := contactrepo.NewPostgresArchive(sqlDB)
		if err := archive.EnsureSchema(context.Background()); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to prepare contact archive schema")
		} else {
			contactArchive = archive
		}

		logger.Logger.Info().Msg("Database initialized successfully")
	} else {
		catalogRepo = catalogrepo.NewStaticRepository(catalogrepo.SeedProducts())
		logger.Logger.Info().Msg("Using static product catalog")
	}

	// Kafka publisher for order events, optional
	var publisher checkout.OrderPublisher
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		pub, err := kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to connect to kafka, order events disabled")
		} else {
			defer pub.Close()
			publisher = pub
			logger.Logger.Info().Str("brokers", brokers).Msg("Kafka publisher initialized")
		}
	}

	// Notifications
	notifier := notification.NewEmitter(notification.DefaultTTL)
	defer notifier.Close()

	// Cart
	cartRepo := cartrepo.NewStorageRepository(store)
	pricing := cartdomain.DefaultPricing()
	cartHandler := cartHttp.NewCartHandler(
		cartcommand.NewAddItemHandler(cartRepo, catalogRepo),
		cartcommand.NewRemoveItemHandler(cartRepo),
		cartcommand.NewSetQuantityHandler(cartRepo),
		cartcommand.NewClearCartHandler(cartRepo),
		cartquery.NewGetCartHandler(cartRepo, pricing),
		notifier,
	)

	// Catalog
	catalogHandler := catalogHttp.NewCatalogHandler(
		catalogquery.NewGetProductHandler(catalogRepo),
		catalogquery.NewListProductsHandler(catalogRepo),
		catalogquery.NewRelatedProductsHandler(catalogRepo, rand.NewSource(time.Now().UnixNano())),
	)

	// Wishlist
	wishlistHandler := wishlistHttp.NewWishlistHandler(wishlistrepo.NewMemoryRepository(), catalogRepo, notifier)

	// Checkout
	checkoutService := checkout.NewService(
		checkoutrepo.NewStorageDraftRepository(store),
		cartRepo,
		catalogRepo,
		pricing,
		notifier,
		publisher,
	)
	checkoutHandler := checkoutHttp.NewCheckoutHandler(checkoutService)

	// Contact
	smtpMailer := mailer.NewSMTPMailer(
		os.Getenv("SMTP_HOST"),
		getEnv("SMTP_PORT", "587"),
		os.Getenv("SMTP_FROM"),
		os.Getenv("SMTP_USERNAME"),
		os.Getenv("SMTP_PASSWORD"),
	)
	relay := contact.NewRelay(smtpMailer, contactArchive, os.Getenv("CONTACT_EMAIL"))
	contactHandler := contactHttp.NewContactHandler(relay)

	// Notification feed
	notificationHandler := notificationHttp.NewNotificationHandler(notifier)

	// Setup router
	router := mux.NewRouter()
	router.Use(middleware.Session)
	router.Use(middleware.Logging)

	catalogHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	wishlistHandler.RegisterRoutes(router)
	checkoutHandler.RegisterRoutes(router)
	contactHandler.RegisterRoutes(router)
	notificationHandler.RegisterRoutes(router)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods("GET")

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := otelhttp.NewHandler(c.Handler(router), "storefront")

	httpPort := getEnv("HTTP_PORT", "8080")
	srv := &http.Server{
		Addr:    ":" + httpPort,
		Handler: handler,
	}

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server shutdown failed")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
