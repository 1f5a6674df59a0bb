package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aarikaaura/storefront/internal/contact/mailer"
	"github.com/aarikaaura/storefront/internal/notifier"
	"github.com/aarikaaura/storefront/kafka"
	"github.com/aarikaaura/storefront/pkg/logger"
	"github.com/aarikaaura/storefront/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "notifier-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Msg("Starting notifier service")

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

	smtpMailer := mailer.NewSMTPMailer(
		os.Getenv("SMTP_HOST"),
		getEnv("SMTP_PORT", "587"),
		os.Getenv("SMTP_FROM"),
		os.Getenv("SMTP_USERNAME"),
		os.Getenv("SMTP_PASSWORD"),
	)
	svc := notifier.New(smtpMailer)

	brokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	groupID := getEnv("KAFKA_GROUP_ID", "notifier-service")

	consumer, err := kafka.NewConsumer(brokers, groupID, []string{kafka.TopicOrderPlaced})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create kafka consumer")
	}
	defer consumer.Close()

	consumer.RegisterHandler(kafka.EventTypeOrderPlaced, svc.HandleOrderPlaced)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := consumer.Start(ctx); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Consumer stopped with error")
		}
	}()

	logger.Logger.Info().
		Strs("brokers", brokers).
		Str("group_id", groupID).
		Str("topic", kafka.TopicOrderPlaced).
		Msg("Consuming order events")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down consumer...")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
