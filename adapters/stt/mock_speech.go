package stt

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/IamSagAr28/meditrack-health-app/domain/repositories"
)

// MockSpeechToText is a placeholder implementation for speech recognition
type MockSpeechToText struct {
	logger *zap.Logger
}

// NewMockSpeechToText creates a new mock speech-to-text service
func NewMockSpeechToText(logger *zap.Logger) repositories.SpeechToText {
	return &MockSpeechToText{
		logger: logger,
	}
}

// TranscribeFile implements repositories.SpeechToText
func (s *MockSpeechToText) TranscribeFile(ctx context.Context, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat audio file: %w", err)
	}

	s.logger.Info("Processing mock speech-to-text", zap.Int64("audioSize", info.Size()))

	if info.Size() == 0 {
		return "", nil
	}
	return fmt.Sprintf("[mock transcription of %d bytes of audio]", info.Size()), nil
}
