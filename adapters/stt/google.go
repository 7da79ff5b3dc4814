package stt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/IamSagAr28/meditrack-health-app/domain/repositories"
)

// opusSampleRate is what browsers record Opus at when no rate is configured.
const opusSampleRate = 48000

// GoogleSpeechToText implements SpeechToText for Google Cloud
type GoogleSpeechToText struct {
	client *speech.Client
	config repositories.AudioConfig
	logger *zap.Logger
}

var _ repositories.SpeechToText = (*GoogleSpeechToText)(nil)

// NewGoogleSpeechToText creates a Speech-to-Text client authenticated with an API key
func NewGoogleSpeechToText(ctx context.Context, apiKey string, config repositories.AudioConfig, logger *zap.Logger) (*GoogleSpeechToText, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Google Speech API key is required")
	}

	client, err := speech.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}

	return &GoogleSpeechToText{
		client: client,
		config: config,
		logger: logger,
	}, nil
}

// TranscribeFile runs a synchronous recognition over the whole file
func (g *GoogleSpeechToText) TranscribeFile(ctx context.Context, path string) (string, error) {
	audioData, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read audio file: %w", err)
	}

	encoding, err := audioEncodingFor(path, g.config.Encoding)
	if err != nil {
		return "", err
	}

	recognitionConfig := &speechpb.RecognitionConfig{
		Encoding:                   encoding,
		LanguageCode:               g.config.Language,
		EnableAutomaticPunctuation: true,
	}
	if rate := sampleRateFor(encoding, g.config.SampleRate); rate > 0 {
		recognitionConfig.SampleRateHertz = int32(rate)
	}

	resp, err := g.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: recognitionConfig,
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audioData},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to recognize speech: %w", err)
	}

	var parts []string
	for _, result := range resp.Results {
		if len(result.Alternatives) > 0 {
			// Take the best alternative
			parts = append(parts, strings.TrimSpace(result.Alternatives[0].Transcript))
		}
	}

	g.logger.Debug("Google speech recognition finished",
		zap.Int("results", len(resp.Results)),
		zap.String("encoding", encoding.String()))

	return strings.Join(parts, " "), nil
}

// Close releases the underlying gRPC connection
func (g *GoogleSpeechToText) Close() error {
	return g.client.Close()
}

// audioEncodingFor resolves the configured encoding, falling back to the
// file extension. Unknown extensions are left unspecified so the service can
// read WAV and FLAC headers itself.
func audioEncodingFor(path, configured string) (speechpb.RecognitionConfig_AudioEncoding, error) {
	if configured != "" {
		return getAudioEncoding(strings.ToUpper(configured))
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return speechpb.RecognitionConfig_LINEAR16, nil
	case ".flac":
		return speechpb.RecognitionConfig_FLAC, nil
	case ".ogg", ".opus":
		return speechpb.RecognitionConfig_OGG_OPUS, nil
	case ".webm":
		return speechpb.RecognitionConfig_WEBM_OPUS, nil
	case ".amr":
		return speechpb.RecognitionConfig_AMR, nil
	default:
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED, nil
	}
}

func sampleRateFor(encoding speechpb.RecognitionConfig_AudioEncoding, configured int) int {
	if configured > 0 {
		return configured
	}
	switch encoding {
	case speechpb.RecognitionConfig_OGG_OPUS, speechpb.RecognitionConfig_WEBM_OPUS:
		return opusSampleRate
	}
	return 0
}

// getAudioEncoding converts string encoding to Google Speech API enum
func getAudioEncoding(encoding string) (speechpb.RecognitionConfig_AudioEncoding, error) {
	switch encoding {
	case "WAV", "LINEAR16":
		return speechpb.RecognitionConfig_LINEAR16, nil
	case "FLAC":
		return speechpb.RecognitionConfig_FLAC, nil
	case "MULAW":
		return speechpb.RecognitionConfig_MULAW, nil
	case "AMR":
		return speechpb.RecognitionConfig_AMR, nil
	case "AMR_WB":
		return speechpb.RecognitionConfig_AMR_WB, nil
	case "OGG_OPUS":
		return speechpb.RecognitionConfig_OGG_OPUS, nil
	case "SPEEX_WITH_HEADER_BYTE":
		return speechpb.RecognitionConfig_SPEEX_WITH_HEADER_BYTE, nil
	case "WEBM_OPUS":
		return speechpb.RecognitionConfig_WEBM_OPUS, nil
	default:
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED, fmt.Errorf("unsupported encoding: %s", encoding)
	}
}
