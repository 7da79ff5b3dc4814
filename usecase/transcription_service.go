package usecase

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/IamSagAr28/meditrack-health-app/domain"
	"github.com/IamSagAr28/meditrack-health-app/domain/repositories"
	"github.com/IamSagAr28/meditrack-health-app/internal/upload"
)

// TranscriptionService stores an uploaded recording and hands it to the
// speech-to-text provider
type TranscriptionService struct {
	speechToText repositories.SpeechToText
	store        *upload.Store
	timeout      time.Duration
	logger       *zap.Logger
}

// NewTranscriptionService creates a new transcription service. A nil
// speechToText marks the provider as not configured.
func NewTranscriptionService(
	stt repositories.SpeechToText,
	store *upload.Store,
	timeout time.Duration,
	logger *zap.Logger,
) *TranscriptionService {
	return &TranscriptionService{
		speechToText: stt,
		store:        store,
		timeout:      timeout,
		logger:       logger,
	}
}

// Configured reports whether a transcription provider is available
func (s *TranscriptionService) Configured() bool {
	return s.speechToText != nil
}

// StoreError wraps failures to persist the upload before transcription
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string { return "store upload: " + e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

// Transcribe writes the upload to a scoped temp file, transcribes it and
// removes the file on every return path.
func (s *TranscriptionService) Transcribe(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if fh == nil || fh.Filename == "" || fh.Size == 0 {
		return "", domain.ErrEmptyAudio
	}

	if !s.Configured() {
		return "", domain.ErrNotConfigured
	}

	src, err := fh.Open()
	if err != nil {
		return "", &StoreError{Err: err}
	}
	defer src.Close()

	path, err := s.store.Save(src, fh.Filename)
	if err != nil {
		return "", &StoreError{Err: err}
	}
	defer s.store.Remove(path)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	transcript, err := s.speechToText.TranscribeFile(ctx, path)
	if err != nil {
		return "", fmt.Errorf("transcribe audio: %w", err)
	}

	if strings.TrimSpace(transcript) == "" {
		return "", domain.ErrEmptyResponse
	}

	s.logger.Info("Audio transcribed",
		zap.String("filename", fh.Filename),
		zap.Int64("size", fh.Size),
		zap.Int("transcript_length", len(transcript)),
		zap.Duration("latency", time.Since(start)))

	return transcript, nil
}
