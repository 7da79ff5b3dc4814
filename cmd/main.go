package main

import (
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/IamSagAr28/meditrack-health-app/adapters"
	"github.com/IamSagAr28/meditrack-health-app/internal/api"
	"github.com/IamSagAr28/meditrack-health-app/internal/config"
	"github.com/IamSagAr28/meditrack-health-app/internal/upload"
	"github.com/IamSagAr28/meditrack-health-app/usecase"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	var logger *zap.Logger
	if cfg.IsDevelopment() {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	if missing := cfg.MissingCredentials(); len(missing) > 0 {
		logger.Warn("Missing API credentials, chatbot functionality will be limited",
			zap.Strings("missing", missing))
	}

	ctx := context.Background()

	// Initialize adapters
	llmService, err := adapters.NewLargeLanguageModel(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize completion provider", zap.Error(err))
	}
	speechToText, err := adapters.NewSpeechToText(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize transcription provider", zap.Error(err))
	}
	if closer, ok := speechToText.(io.Closer); ok {
		defer closer.Close()
	}

	store, err := upload.NewStore(cfg.UploadDir, logger)
	if err != nil {
		logger.Fatal("Failed to prepare upload directory", zap.Error(err))
	}

	// Initialize usecase services
	chatService := usecase.NewChatService(llmService, cfg.ChatTimeout, logger)
	transcriptionService := usecase.NewTranscriptionService(speechToText, store, cfg.TranscribeTimeout, logger)

	handler := api.NewHandler(chatService, transcriptionService, logger)
	e, err := api.NewServer(cfg, handler, logger)
	if err != nil {
		logger.Fatal("Failed to build server", zap.Error(err))
	}

	addr := net.JoinHostPort(cfg.Host, cfg.Port)

	// Graceful shutdown
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Chatbot server started",
		zap.String("addr", addr),
		zap.String("env", cfg.Env),
		zap.String("chat_provider", cfg.ChatProvider),
		zap.String("transcribe_provider", cfg.TranscribeProvider),
		zap.Bool("chat_configured", chatService.Configured()),
		zap.Bool("transcribe_configured", transcriptionService.Configured()))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
