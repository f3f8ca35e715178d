package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pathsdata/contact-backend/internal/config"
	"github.com/pathsdata/contact-backend/internal/handler"
	"github.com/pathsdata/contact-backend/internal/logging"
	"github.com/pathsdata/contact-backend/internal/mailer"
	"github.com/pathsdata/contact-backend/internal/repository"
	"github.com/pathsdata/contact-backend/internal/service"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg := config.Load()
	ctx := context.Background()

	// Persistence is optional: no table and no DSN means submissions are
	// accepted but not stored.
	var repo repository.SubmissionRepository
	switch {
	case cfg.UseDynamo():
		client, err := repository.NewDynamoClient(ctx, cfg)
		if err != nil {
			logging.Fatal("failed to build dynamodb client", "error", err)
		}
		repo = repository.NewDynamoSubmissionRepository(client, cfg.TableName)
		slog.Info("persistence enabled", "backend", "dynamodb", "table", cfg.TableName)
	case cfg.DatabaseURL != "":
		pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logging.Fatal("failed to connect to database", "error", err)
		}
		defer pool.Close()
		repo = repository.NewPgSubmissionRepository(pool)
		slog.Info("persistence enabled", "backend", "postgres")
	default:
		slog.Info("persistence disabled: no store configured")
	}

	// Notification is optional: both addresses must be set.
	var m mailer.Mailer
	if cfg.NotificationEnabled() {
		client, err := mailer.NewSESClient(ctx, cfg)
		if err != nil {
			logging.Fatal("failed to build ses client", "error", err)
		}
		m = mailer.NewSESMailer(client, cfg.SenderEmail, cfg.AdminEmail)
		slog.Info("notifications enabled", "admin", cfg.AdminEmail)
	} else {
		slog.Info("notifications disabled: sender or admin address not configured")
	}

	contactService := service.NewContactService(repo, m)
	contactHandler := handler.NewContactHandler(contactService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", handler.Health)
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("GET /api/contact/submissions", contactHandler.List)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler.CORS(handler.RequestLogger(mux)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
