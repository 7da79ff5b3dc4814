package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/IamSagAr28/meditrack-health-app/domain"
	"github.com/IamSagAr28/meditrack-health-app/domain/repositories"
)

// ChatService relays user text to the completion provider
type ChatService struct {
	llm     repositories.LargeLanguageModel
	timeout time.Duration
	logger  *zap.Logger
}

// NewChatService creates a new chat service. A nil llm marks the provider
// as not configured.
func NewChatService(llm repositories.LargeLanguageModel, timeout time.Duration, logger *zap.Logger) *ChatService {
	return &ChatService{llm: llm, timeout: timeout, logger: logger}
}

// Configured reports whether a completion provider is available
func (s *ChatService) Configured() bool {
	return s.llm != nil
}

// Reply asks the completion provider to answer input
func (s *ChatService) Reply(ctx context.Context, input string) (string, error) {
	if !s.Configured() {
		return "", domain.ErrNotConfigured
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	reply, err := s.llm.Generate(ctx, input)
	if err != nil {
		return "", fmt.Errorf("generate reply: %w", err)
	}

	if strings.TrimSpace(reply) == "" {
		return "", domain.ErrEmptyResponse
	}

	s.logger.Info("Chat reply generated",
		zap.Int("input_length", len(input)),
		zap.Int("reply_length", len(reply)),
		zap.Duration("latency", time.Since(start)))

	return reply, nil
}
