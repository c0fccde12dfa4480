package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "notevault-backend/cmd/api"
	authdomain "notevault-backend/internal/auth/domain"
	authRepo "notevault-backend/internal/auth/repository"
	authUsecase "notevault-backend/internal/auth/usecase"
	notedomain "notevault-backend/internal/note/domain"
	noteRepo "notevault-backend/internal/note/repository"
	noteUsecase "notevault-backend/internal/note/usecase"
	"notevault-backend/pkg/config"
	"notevault-backend/pkg/database"
	"notevault-backend/pkg/logging"
	"notevault-backend/pkg/mailer"
	"notevault-backend/pkg/token"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger := logging.New(cfg.Env)
	slog.SetDefault(logger)

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &notedomain.Note{}); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	// Initialize mailer
	smtpMailer, err := mailer.NewSMTPMailer(cfg)
	if err != nil {
		logger.Error("failed to initialize mailer", "error", err)
		os.Exit(1)
	}

	// Token service with independent access/refresh secrets
	tokens := token.NewService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessTokenExpiry, cfg.RefreshTokenExpiry)

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	noteRepository := noteRepo.NewGormNoteRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, tokens, smtpMailer, cfg.Origin)
	noteUsecaseInstance := noteUsecase.NewNoteUsecase(noteRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, noteUsecaseInstance, tokens, cfg)

	// Start server
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port)
		errCh <- handler.Start(":" + cfg.Port)
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := handler.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("server stopped")
}
