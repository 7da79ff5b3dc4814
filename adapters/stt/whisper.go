package stt

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/IamSagAr28/meditrack-health-app/domain/repositories"
)

// WhisperConfig holds configuration for the WhisperSpeechToText adapter
type WhisperConfig struct {
	APIKey   string // Required
	BaseURL  string // Optional, for OpenAI compatible servers
	Language string // Optional ISO-639-1 code
}

// WhisperSpeechToText implements SpeechToText using the OpenAI audio API
type WhisperSpeechToText struct {
	client   *openai.Client
	language string
	logger   *zap.Logger
}

var _ repositories.SpeechToText = (*WhisperSpeechToText)(nil)

// NewWhisperSpeechToText creates a new Whisper transcription adapter
func NewWhisperSpeechToText(config WhisperConfig, logger *zap.Logger) (*WhisperSpeechToText, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &WhisperSpeechToText{
		client:   openai.NewClientWithConfig(clientConfig),
		language: config.Language,
		logger:   logger,
	}, nil
}

// TranscribeFile sends the file to the transcription endpoint
func (w *WhisperSpeechToText) TranscribeFile(ctx context.Context, path string) (string, error) {
	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: path,
		Language: w.language,
	})
	if err != nil {
		return "", fmt.Errorf("whisper transcription: %w", err)
	}

	return resp.Text, nil
}
