package stt

import (
	"context"
	"fmt"
	"os"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"go.uber.org/zap"

	"github.com/IamSagAr28/meditrack-health-app/domain/repositories"
)

// AssemblyAISpeechToText implements SpeechToText using the AssemblyAI API
type AssemblyAISpeechToText struct {
	client *aai.Client
	logger *zap.Logger
}

var _ repositories.SpeechToText = (*AssemblyAISpeechToText)(nil)

// NewAssemblyAISpeechToText creates a new AssemblyAI transcription adapter
func NewAssemblyAISpeechToText(apiKey string, logger *zap.Logger) (*AssemblyAISpeechToText, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("AssemblyAI API key is required")
	}

	return &AssemblyAISpeechToText{
		client: aai.NewClient(apiKey),
		logger: logger,
	}, nil
}

// TranscribeFile uploads the file and waits for the transcript to complete
func (a *AssemblyAISpeechToText) TranscribeFile(ctx context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open audio file: %w", err)
	}
	defer file.Close()

	transcript, err := a.client.Transcripts.TranscribeFromReader(ctx, file, nil)
	if err != nil {
		return "", fmt.Errorf("assemblyai transcribe: %w", err)
	}

	if transcript.Status == aai.TranscriptStatusError {
		return "", fmt.Errorf("assemblyai transcript %s failed: %s",
			aai.ToString(transcript.ID), aai.ToString(transcript.Error))
	}

	a.logger.Debug("AssemblyAI transcript completed",
		zap.String("transcript_id", aai.ToString(transcript.ID)),
		zap.String("status", string(transcript.Status)))

	return aai.ToString(transcript.Text), nil
}
