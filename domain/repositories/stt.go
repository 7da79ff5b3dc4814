package repositories

import "context"

// SpeechToText abstracts speech recognition services
type SpeechToText interface {
	// TranscribeFile converts the audio stored at path to text
	TranscribeFile(ctx context.Context, path string) (string, error)
}

// AudioConfig represents audio configuration for speech recognition.
// Zero values let the provider infer the setting.
type AudioConfig struct {
	SampleRate int    `json:"sample_rate"`
	Encoding   string `json:"encoding"`
	Language   string `json:"language"`
}
