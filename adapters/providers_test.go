package adapters

import (
	"context"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/IamSagAr28/meditrack-health-app/adapters/llm"
	"github.com/IamSagAr28/meditrack-health-app/adapters/stt"
	"github.com/IamSagAr28/meditrack-health-app/internal/config"
)

func TestNewLargeLanguageModel(t *testing.T) {
	logger := zaptest.NewLogger(t)
	ctx := context.Background()

	t.Run("missing credential degrades to nil", func(t *testing.T) {
		model, err := NewLargeLanguageModel(ctx, &config.Config{ChatProvider: config.ProviderGemini}, logger)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if model != nil {
			t.Errorf("Expected nil model, got %T", model)
		}
	})

	t.Run("mock needs no credential", func(t *testing.T) {
		model, err := NewLargeLanguageModel(ctx, &config.Config{ChatProvider: config.ProviderMock}, logger)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if _, ok := model.(*llm.MockLLM); !ok {
			t.Errorf("Expected *llm.MockLLM, got %T", model)
		}
	})

	t.Run("openai with credential", func(t *testing.T) {
		model, err := NewLargeLanguageModel(ctx, &config.Config{ChatProvider: config.ProviderOpenAI, OpenAIAPIKey: "key"}, logger)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if _, ok := model.(*llm.OpenAILLM); !ok {
			t.Errorf("Expected *llm.OpenAILLM, got %T", model)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		if _, err := NewLargeLanguageModel(ctx, &config.Config{ChatProvider: "llama"}, logger); err == nil {
			t.Error("Expected error for unknown provider")
		}
	})
}

func TestNewSpeechToText(t *testing.T) {
	logger := zaptest.NewLogger(t)
	ctx := context.Background()

	t.Run("missing credential degrades to nil", func(t *testing.T) {
		s, err := NewSpeechToText(ctx, &config.Config{TranscribeProvider: config.ProviderAssemblyAI}, logger)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if s != nil {
			t.Errorf("Expected nil transcriber, got %T", s)
		}
	})

	t.Run("assemblyai with credential", func(t *testing.T) {
		s, err := NewSpeechToText(ctx, &config.Config{TranscribeProvider: config.ProviderAssemblyAI, AssemblyAIAPIKey: "key"}, logger)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if _, ok := s.(*stt.AssemblyAISpeechToText); !ok {
			t.Errorf("Expected *stt.AssemblyAISpeechToText, got %T", s)
		}
	})

	t.Run("whisper shares the openai key", func(t *testing.T) {
		s, err := NewSpeechToText(ctx, &config.Config{TranscribeProvider: config.ProviderWhisper, OpenAIAPIKey: "key"}, logger)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if _, ok := s.(*stt.WhisperSpeechToText); !ok {
			t.Errorf("Expected *stt.WhisperSpeechToText, got %T", s)
		}
	})

	t.Run("mock", func(t *testing.T) {
		s, err := NewSpeechToText(ctx, &config.Config{TranscribeProvider: config.ProviderMock}, logger)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if _, ok := s.(*stt.MockSpeechToText); !ok {
			t.Errorf("Expected *stt.MockSpeechToText, got %T", s)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		if _, err := NewSpeechToText(ctx, &config.Config{TranscribeProvider: "deepgram"}, logger); err == nil {
			t.Error("Expected error for unknown provider")
		}
	})
}

func TestWhisperLanguage(t *testing.T) {
	tests := map[string]string{
		"en-US": "en",
		"es_MX": "es",
		"fr":    "fr",
		"":      "",
	}
	for in, want := range tests {
		if got := whisperLanguage(in); got != want {
			t.Errorf("whisperLanguage(%q) = %q, want %q", in, got, want)
		}
	}
}
