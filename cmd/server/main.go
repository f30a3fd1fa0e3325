package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"messages/internal"
	"messages/internal/data"
	"messages/internal/handler"
	"messages/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := internal.LoadConfig()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		logger.Error("database could not be opened", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}

	storage, err := data.NewStorageManager(db)
	if err != nil {
		logger.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	authService := service.NewAuthService(storage.Users(), cfg.SessionTTL, logger)
	channelService := service.NewChannelService(storage.Channels(), storage.ChannelMessages(), logger)
	channelMessageService := service.NewChannelMessageService(
		storage.Channels(), storage.ChannelMessages(), storage.Users(), logger)
	userMessageService := service.NewUserMessageService(storage.UserMessages(), storage.Users(), logger)

	validate := validator.New()
	router := handler.NewRouter(
		handler.NewChannelHandler(channelService, validate, logger),
		handler.NewChannelMessageHandler(channelMessageService, validate, logger),
		handler.NewUserMessageHandler(userMessageService, validate, logger),
		handler.NewAuthHandler(authService, validate, logger),
		authService,
	)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(router)

	server := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Port),
		Handler:        corsHandler,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
	}()

	logger.Info("http server listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server error", "error", err)
		os.Exit(1)
	}
}
