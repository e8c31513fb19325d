package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tair/shop-admin/internal/catalog"
	httpDelivery "github.com/tair/shop-admin/internal/catalog/delivery/http"
	"github.com/tair/shop-admin/internal/catalog/domain"
	"github.com/tair/shop-admin/kafka"
	"github.com/tair/shop-admin/pkg/database"
	"github.com/tair/shop-admin/pkg/health"
	"github.com/tair/shop-admin/pkg/logger"
	"github.com/tair/shop-admin/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "catalog-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting catalog service")

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

	// Connect to database
	dbConfig := database.ConfigFromEnv(os.Getenv, "shopdb")
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := db.AutoMigrate(&domain.Product{}, &domain.StockMovement{}); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Initialize handler with Wire DI
	handler, err := catalog.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Event audit consumer
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		startEventAudit(ctx, []string{brokers})
	}

	// gRPC health endpoint
	healthAddr := getEnv("GRPC_HEALTH_ADDR", ":9091")
	healthServer := health.NewServer(serviceName, sqlDB)
	go func() {
		if err := healthServer.Serve(ctx, healthAddr); err != nil {
			logger.Logger.Error().Err(err).Msg("Health server stopped")
		}
	}()

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8081")
	go startHTTPServer(handler, sqlDB, httpPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

// startEventAudit subscribes to the order and stock topics and logs every
// event as the operational audit trail.
func startEventAudit(ctx context.Context, brokers []string) {
	consumer, err := kafka.NewConsumer(brokers, "catalog-service", []string{
		kafka.TopicOrderPlaced,
		kafka.TopicStockReplenished,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create Kafka consumer")
		return
	}

	consumer.RegisterHandler(kafka.EventTypeOrderPlaced, func(ctx context.Context, eventID string, payload []byte) error {
		var event kafka.OrderPlacedEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return err
		}
		logger.Info(ctx).
			Str("event_id", eventID).
			Uint("order_id", event.OrderID).
			Float64("total_price", event.TotalPrice).
			Bool("partial_failure", event.PartialFailure).
			Int("lines", len(event.LineOutcomes)).
			Msg("Order placed")
		return nil
	})

	consumer.RegisterHandler(kafka.EventTypeStockReplenished, func(ctx context.Context, eventID string, payload []byte) error {
		var event kafka.StockReplenishedEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return err
		}
		logger.Info(ctx).
			Str("event_id", eventID).
			Uint("product_id", event.ProductID).
			Int("restocked_to", event.RestockedTo).
			Str("line_key", event.LineKey).
			Msg("Stock replenished")
		return nil
	})

	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to start Kafka consumer")
	}
}

func startHTTPServer(handler *httpDelivery.CatalogHandler, db *sql.DB, port string) {
	// Setup router
	router := mux.NewRouter()

	// Register routes
	handler.RegisterRoutes(router)

	// Health check endpoint
	handler.RegisterHealthCheck(router, db)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	httpDelivery.RegisterSwaggerDocs(router, httpSwagger.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Msg("HTTP server started")

	if err := http.ListenAndServe(":"+port, otelhttp.NewHandler(c.Handler(router), "http-request")); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
