package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"eventdesk/config"
	"eventdesk/internal/adapters/email"
	"eventdesk/internal/adapters/gcal"
	deliveryhttp "eventdesk/internal/delivery/http"
	"eventdesk/internal/delivery/http/controllers"
	"eventdesk/internal/delivery/http/middleware"
	"eventdesk/internal/domain"
	"eventdesk/internal/repository/postgres"
	"eventdesk/internal/services"
	"eventdesk/internal/store/memory"
)

const (
	serviceTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

// @title EventDesk API
// @version 1.0
// @description Event scheduling backend with email and calendar integrations.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := config.NewLogger(cfg)
	ctx := context.Background()

	var eventRepo domain.EventRepository
	if cfg.DBUrl != "" {
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			logger.Error("failed to open database", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			logger.Error("failed to ping database", "err", err)
			os.Exit(1)
		}
		eventRepo = postgres.NewEventRepository(db)
		logger.Info("using postgres event store")
	} else {
		eventRepo = memory.NewEventStore()
		logger.Info("using in-memory event store")
	}

	mailer, err := email.NewMailer(logger, email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	calendarSync, err := gcal.NewCalendarSync(ctx, logger, gcal.SyncConfig{
		Provider:     cfg.CalendarProvider,
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		TokenFile:    cfg.GoogleTokenFile,
		CalendarID:   cfg.GoogleCalendarID,
	})
	if err != nil {
		logger.Error("failed to create calendar sync", "err", err)
		os.Exit(1)
	}

	renderer := email.NewTemplateRenderer()
	notifier := services.NewNotificationDispatcher(logger, mailer, renderer, calendarSync, cfg.AdminEmail)
	eventService := services.NewEventService(eventRepo, notifier, serviceTimeout)
	eventController := controllers.NewEventController(logger, eventService)

	mux := deliveryhttp.NewRouter(eventController)
	handler := middleware.RequestID(
		middleware.Logging(logger,
			middleware.CORS(cfg.CORSAllowedOrigins, mux)))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
