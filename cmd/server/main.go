package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dukerupert/tenancy/internal"
	"github.com/dukerupert/tenancy/internal/assistant"
	"github.com/dukerupert/tenancy/internal/billing"
	"github.com/dukerupert/tenancy/internal/events"
	"github.com/dukerupert/tenancy/internal/handler/api"
	"github.com/dukerupert/tenancy/internal/invoicepdf"
	"github.com/dukerupert/tenancy/internal/middleware"
	"github.com/dukerupert/tenancy/internal/notify"
	"github.com/dukerupert/tenancy/internal/quickbooks"
	"github.com/dukerupert/tenancy/internal/repository"
	"github.com/dukerupert/tenancy/internal/router"
	"github.com/dukerupert/tenancy/internal/routes"
	"github.com/dukerupert/tenancy/internal/scheduler"
	"github.com/dukerupert/tenancy/internal/service"
	"github.com/dukerupert/tenancy/internal/storage"
	"github.com/dukerupert/tenancy/internal/telemetry"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	release := cfg.Sentry.Release
	if release == "" {
		release = version
	}
	flushSentry, err := telemetry.InitSentry(telemetry.SentryConfig{
		DSN:              cfg.Sentry.DSN,
		Enabled:          cfg.Sentry.Enabled,
		Environment:      cfg.Sentry.Environment,
		Release:          release,
		SampleRate:       cfg.Sentry.SampleRate,
		TracesSampleRate: cfg.Sentry.TracesSampleRate,
		Debug:            cfg.Sentry.Debug,
	}, logger)
	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}
	defer flushSentry()

	// Connect to the database
	logger.Info("Connecting to database...")
	db, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	logger.Info("Database connection established")

	// Run migrations
	logger.Info("Running database migrations...")
	if err := internal.RunMigrations(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	store := repository.NewStore(db)
	metrics := telemetry.InitBusinessMetrics("tenancy")

	// ==========================================================================
	// External clients
	// ==========================================================================

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.NATS.URL != "" {
		nats, err := events.NewNATSPublisher(cfg.NATS.URL, cfg.NATS.Subject, logger)
		if err != nil {
			return fmt.Errorf("failed to connect to NATS: %w", err)
		}
		defer nats.Close()
		publisher = nats
	}

	provider, err := billing.NewProvider(billing.Config{
		Provider:       cfg.Gateway.Provider,
		BaseURL:        cfg.Gateway.BaseURL,
		SecretKey:      cfg.Gateway.SecretKey,
		MerchantID:     cfg.Gateway.MerchantID,
		PublishableKey: cfg.Gateway.PublishableKey,
		Timeout:        cfg.Gateway.Timeout,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize payment gateway: %w", err)
	}
	gateway := telemetry.InstrumentProvider(provider, metrics)
	logger.Info("Payment gateway configured", "provider", cfg.Gateway.Provider)

	mailer, err := newMailer(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize mailer: %w", err)
	}
	instrumentedMailer := telemetry.InstrumentMailer(mailer, metrics)

	// The SMS sender stays a nil interface when unconfigured in production so
	// the SMS endpoint answers 501 and maintenance alerts are skipped.
	var sms notify.SMSSender
	switch {
	case cfg.Twilio.AccountSID != "":
		sms = telemetry.InstrumentSMS(
			notify.NewTwilioSender(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber, logger),
			metrics,
		)
	case cfg.Env == "dev":
		sms = &notify.LogSMSSender{Logger: logger}
	default:
		logger.Warn("Twilio not configured, SMS disabled")
	}

	var (
		diagnoser service.Diagnoser
		analyzer  api.DocumentAnalyzer
	)
	if cfg.OpenAI.APIKey != "" {
		ai := assistant.New(cfg.OpenAI.APIKey, cfg.OpenAI.Model, "", logger)
		diagnoser = ai
		analyzer = ai
	} else {
		logger.Warn("OpenAI not configured, maintenance triage and document analysis disabled")
	}

	files, err := storage.NewStorage(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	qb := quickbooks.New(quickbooks.Config{
		ClientID:     cfg.QuickBooks.ClientID,
		ClientSecret: cfg.QuickBooks.ClientSecret,
		RedirectURL:  cfg.QuickBooks.RedirectURL,
		TokenURL:     cfg.QuickBooks.TokenURL,
	}, &http.Client{Timeout: 15 * time.Second, Transport: &telemetry.HTTPTransport{}})

	// ==========================================================================
	// Services
	// ==========================================================================

	invoiceService := service.NewInvoiceService(store, instrumentedMailer, publisher, cfg.BaseURL, logger)
	splitService := service.NewSplitPaymentService(store, gateway, instrumentedMailer, publisher, cfg.BaseURL, logger)
	paymentService := service.NewPaymentService(
		invoiceService,
		splitService,
		gateway,
		cfg.Gateway.MerchantID,
		cfg.Gateway.PublishableKey,
		logger,
	)
	merchantService := service.NewMerchantService(store, gateway, logger)
	tenantService := service.NewTenantService(store, logger)
	propertyService := service.NewPropertyService(store, logger)
	contactService := service.NewContactService(store, logger)
	maintenanceService := service.NewMaintenanceService(store, diagnoser, sms, publisher, logger)

	// ==========================================================================
	// Middleware and routes
	// ==========================================================================

	httpMetrics := middleware.NewMetrics("tenancy")
	defaultRateLimiter := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())
	defer defaultRateLimiter.Stop()
	payRateLimiter := middleware.NewRateLimiter(middleware.PayRateLimiterConfig())
	defer payRateLimiter.Stop()

	r := router.New(
		router.Recovery(logger, telemetry.ReportPanic),
		middleware.RequestID,
		middleware.WithClientIP(),
		httpMetrics.Middleware,
		telemetry.SentryMiddleware(),
		middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig()),
		defaultRateLimiter.Middleware,
		middleware.WithRequestLogger(logger),
		router.Logger(logger, func(req *http.Request) *slog.Logger {
			return middleware.GetLogger(req.Context(), logger)
		}),
	)

	routes.RegisterPublicRoutes(r, routes.PublicDeps{
		Health:     api.NewHealthHandler(db, version),
		Metrics:    httpMetrics.Handler(),
		PayHandler: api.NewPayHandler(paymentService, metrics, logger),
		PayLimiter: payRateLimiter.Middleware,
	})

	routes.RegisterAPIRoutes(r, routes.APIDeps{
		Auth: routes.RequireUser(middleware.AuthConfig{
			Secret:   []byte(cfg.Auth.JWTSecret),
			Issuer:   cfg.Auth.Issuer,
			Audience: cfg.Auth.Audience,
		}),
		InvoiceHandler: api.NewInvoiceHandler(
			invoiceService,
			paymentService,
			invoicepdf.Issuer{Name: cfg.Email.FromName, Email: cfg.Email.From},
			cfg.BaseURL,
			metrics,
			logger,
		),
		SplitHandler:       api.NewSplitHandler(splitService, metrics),
		MerchantHandler:    api.NewMerchantHandler(merchantService, metrics),
		TenantHandler:      api.NewTenantHandler(tenantService),
		PropertyHandler:    api.NewPropertyHandler(propertyService),
		ContactHandler:     api.NewContactHandler(contactService),
		MaintenanceHandler: api.NewMaintenanceHandler(maintenanceService, metrics),
		QuickBooksHandler:  api.NewQuickBooksHandler(qb, logger),
		SMSHandler:         api.NewSMSHandler(sms, metrics),
		DocumentHandler:    api.NewDocumentHandler(files, analyzer, logger),
	})

	// ==========================================================================
	// Background jobs
	// ==========================================================================

	sched, err := scheduler.New(scheduler.Config{OverdueSweep: cfg.Scheduler.OverdueSweep}, invoiceService, metrics, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize scheduler: %w", err)
	}
	sched.Start()

	// ==========================================================================
	// Start server
	// ==========================================================================

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router.CORS(cfg.CORS.AllowedOrigins)(r),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "address", srv.Addr, "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		logger.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sched.Stop(shutdownCtx)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

// newMailer sends over SMTP when a host is configured and logs emails
// otherwise.
func newMailer(cfg *internal.Config, logger *slog.Logger) (*notify.Mailer, error) {
	var sender notify.Sender
	if cfg.Email.Host != "" {
		sender = notify.NewSMTPSender(&notify.SMTPConfig{
			Host:     cfg.Email.Host,
			Port:     int(cfg.Email.Port),
			Username: cfg.Email.Username,
			Password: cfg.Email.Password,
			From:     cfg.Email.From,
			FromName: cfg.Email.FromName,
		}, logger)
	} else {
		logger.Warn("SMTP not configured, emails will be logged")
		sender = &notify.LogSender{Logger: logger}
	}
	return notify.NewMailer(sender)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
