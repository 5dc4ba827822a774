package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/monteverde-landscapes/website-api/internal/api/router"
	appconfig "github.com/monteverde-landscapes/website-api/internal/config"
	"github.com/monteverde-landscapes/website-api/internal/content"
	"github.com/monteverde-landscapes/website-api/internal/leads"
	"github.com/monteverde-landscapes/website-api/internal/notify"
	"github.com/monteverde-landscapes/website-api/internal/observability/metrics"
	"github.com/monteverde-landscapes/website-api/internal/reviews"
	"github.com/monteverde-landscapes/website-api/pkg/logging"
)

func main() {
	// Load .env if present, then configuration from the environment.
	_ = godotenv.Load()
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel, cfg.Env)
	logger.Info("starting website-api server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	// Initialize repositories. Without a DATABASE_URL the server runs on
	// in-memory storage, which is enough for local front-end work.
	var (
		leadsRepo   leads.Repository
		reviewsRepo reviews.Repository
		pool        *pgxpool.Pool
	)
	if cfg.DatabaseURL != "" {
		var err error
		pool, err = pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to create database pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
		leadsRepo = leads.NewPostgresRepository(pool)
		reviewsRepo = reviews.NewPostgresRepository(pool)
		logger.Info("connected to postgres")
	} else {
		leadsRepo = leads.NewInMemoryRepository()
		reviewsRepo = reviews.NewInMemoryRepository()
		logger.Warn("DATABASE_URL not set, using in-memory storage")
	}

	// Initialize email notifications.
	notifier := notify.NewService(newEmailSender(ctx, cfg, logger), cfg.NotifyEmailTo, logger)

	// Metrics
	registry := prometheus.NewRegistry()
	formMetrics := metrics.NewFormMetrics(registry)

	// Initialize handlers
	leadsHandler := leads.NewHandler(leadsRepo, notifier, formMetrics, logger)
	reviewsHandler := reviews.NewHandler(reviewsRepo, notifier, formMetrics, logger)
	contentHandler := content.NewHandler(logger)

	// Setup router
	r := router.New(&router.Config{
		Logger:             logger,
		LeadsHandler:       leadsHandler,
		ReviewsHandler:     reviewsHandler,
		ContentHandler:     contentHandler,
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		FormRateLimit:      cfg.FormRateLimit,
		FormRateBurst:      cfg.FormRateBurst,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	// Let in-flight notification emails finish before the process exits.
	notifier.Wait()

	logger.Info("server stopped")
}

// newEmailSender picks the notification transport from configuration:
// "sendgrid", "ses", "stub", or "auto" (sendgrid when a key is present,
// stub otherwise).
func newEmailSender(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) notify.EmailSender {
	sgCfg := notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.EmailFromAddress,
		FromName:  cfg.EmailFromName,
	}

	switch cfg.EmailProvider {
	case "sendgrid":
		if sender := notify.NewSendGridSender(sgCfg, logger); sender != nil {
			return sender
		}
		logger.Warn("EMAIL_PROVIDER=sendgrid but SENDGRID_API_KEY is empty, using stub sender")
	case "ses":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			logger.Error("failed to load AWS config, using stub sender", "error", err)
			break
		}
		sesCfg := notify.SESConfig{FromEmail: cfg.EmailFromAddress, FromName: cfg.EmailFromName}
		if sender := notify.NewSESSender(sesv2.NewFromConfig(awsCfg), sesCfg, logger); sender != nil {
			return sender
		}
	case "auto":
		if sender := notify.NewSendGridSender(sgCfg, logger); sender != nil {
			return sender
		}
	}
	return notify.NewStubEmailSender(logger)
}
