package adapters

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/IamSagAr28/meditrack-health-app/adapters/llm"
	"github.com/IamSagAr28/meditrack-health-app/adapters/stt"
	"github.com/IamSagAr28/meditrack-health-app/domain/repositories"
	"github.com/IamSagAr28/meditrack-health-app/internal/config"
)

// NewLargeLanguageModel builds the completion provider selected by cfg.
// It returns a nil model and no error when the provider's credential is
// missing, leaving the chat endpoint to fail at call time.
func NewLargeLanguageModel(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repositories.LargeLanguageModel, error) {
	switch cfg.ChatProvider {
	case config.ProviderGemini, config.ProviderOpenAI:
		if cfg.ChatAPIKey() == "" {
			logger.Warn("Completion provider has no credential", zap.String("provider", cfg.ChatProvider))
			return nil, nil
		}
	case config.ProviderMock:
	default:
		return nil, fmt.Errorf("unknown chat provider %q", cfg.ChatProvider)
	}

	switch cfg.ChatProvider {
	case config.ProviderGemini:
		return llm.NewGeminiLLM(ctx, llm.GeminiConfig{
			APIKey: cfg.GeminiAPIKey,
			Model:  cfg.GeminiModel,
		}, logger)
	case config.ProviderOpenAI:
		return llm.NewOpenAILLM(llm.OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIChatModel,
		}, logger)
	default:
		return llm.NewMockLLM(), nil
	}
}

// NewSpeechToText builds the transcription provider selected by cfg, with
// the same degraded-mode contract as NewLargeLanguageModel.
func NewSpeechToText(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repositories.SpeechToText, error) {
	switch cfg.TranscribeProvider {
	case config.ProviderAssemblyAI, config.ProviderGoogle, config.ProviderWhisper:
		if cfg.TranscribeAPIKey() == "" {
			logger.Warn("Transcription provider has no credential", zap.String("provider", cfg.TranscribeProvider))
			return nil, nil
		}
	case config.ProviderMock:
	default:
		return nil, fmt.Errorf("unknown transcribe provider %q", cfg.TranscribeProvider)
	}

	switch cfg.TranscribeProvider {
	case config.ProviderAssemblyAI:
		return stt.NewAssemblyAISpeechToText(cfg.AssemblyAIAPIKey, logger)
	case config.ProviderGoogle:
		return stt.NewGoogleSpeechToText(ctx, cfg.GoogleSpeechAPIKey, repositories.AudioConfig{
			Language: cfg.SpeechLanguage,
		}, logger)
	case config.ProviderWhisper:
		return stt.NewWhisperSpeechToText(stt.WhisperConfig{
			APIKey:   cfg.OpenAIAPIKey,
			BaseURL:  cfg.OpenAIBaseURL,
			Language: whisperLanguage(cfg.SpeechLanguage),
		}, logger)
	default:
		return stt.NewMockSpeechToText(logger), nil
	}
}

// whisperLanguage reduces a BCP-47 tag such as en-US to the ISO-639-1 code
// the audio API expects.
func whisperLanguage(tag string) string {
	for i, r := range tag {
		if r == '-' || r == '_' {
			return tag[:i]
		}
	}
	return tag
}
