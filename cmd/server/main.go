package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"autoevents/config"
	_ "autoevents/docs"
	"autoevents/internal/adapters/auth"
	"autoevents/internal/adapters/email"
	deliveryhttp "autoevents/internal/delivery/http"
	"autoevents/internal/delivery/http/controllers"
	"autoevents/internal/delivery/http/middleware"
	"autoevents/internal/repository/postgres"
	"autoevents/internal/services"
)

const (
	serviceTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
	bcryptCost      = 12
	authRateLimit   = 1.0 // requests per second per client IP
	authRateBurst   = 5
)

// @title AutoEvents API
// @version 1.0
// @description Backend API for listing and managing automotive events.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.

// @BasePath /
func main() {
	cfg, err := config.Load()
	logger := config.NewLogger()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	applyMigrations(db, logger)

	eventRepo := postgres.NewEventRepository(db)
	userRepo := postgres.NewUserRepository(db)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFrom,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.SESRegion,
			AccessKeyID:        cfg.SESAccessKeyID,
			SecretAccessKey:    cfg.SESSecretKey,
			InsecureSkipVerify: cfg.SESInsecureSkip,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "error", err)
		os.Exit(1)
	}

	emailSvc := services.NewEmailService(mailer, email.NewTemplateRenderer())
	issuer := auth.NewJWTIssuer(cfg.JWTSecret)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher(bcryptCost)

	eventSvc := services.NewEventService(eventRepo, userRepo, emailSvc, logger, serviceTimeout)
	authSvc := services.NewAuthService(userRepo, hasher, issuer, cfg.JWTExpiry, serviceTimeout)

	eventController := controllers.NewEventController(logger, eventSvc, cfg.Environment, cfg.BaseURL)
	authController := controllers.NewAuthController(logger, authSvc, cfg.Environment)

	authLimiter := middleware.NewRateLimiter(authRateLimit, authRateBurst)
	mux := deliveryhttp.NewRouter(eventController, authController, verifier, authLimiter, db)

	handler := middleware.CORS(cfg.CORSAllowedOrigins,
		middleware.LoggingMiddleware(logger,
			middleware.Metrics(mux)))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

// applyMigrations applies the schema file if present. Errors are logged but
// not fatal so the server can run against an already-migrated database.
func applyMigrations(db *sql.DB, logger *slog.Logger) {
	const path = "db/migrations/001_init.sql"
	schema, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("migration file not found, skipping", "path", path)
		return
	}
	if _, err := db.Exec(string(schema)); err != nil {
		logger.Warn("migration apply failed", "error", err)
		return
	}
	logger.Info("migrations applied", "path", path)
}
