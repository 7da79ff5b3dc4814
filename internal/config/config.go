package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/bytes"
)

// Provider names accepted by CHAT_PROVIDER and TRANSCRIBE_PROVIDER.
const (
	ProviderGemini     = "gemini"
	ProviderOpenAI     = "openai"
	ProviderAssemblyAI = "assemblyai"
	ProviderGoogle     = "google"
	ProviderWhisper    = "whisper"
	ProviderMock       = "mock"
)

const defaultProductionOrigin = "https://meditrack-frontend.onrender.com"

// CSPConfig lists the sources allowed per Content-Security-Policy directive.
type CSPConfig struct {
	ScriptSrc      []string
	StyleSrc       []string
	FontSrc        []string
	MediaSrc       []string
	FrameAncestors []string
}

// String renders the policy as a header value.
func (c CSPConfig) String() string {
	directives := []string{"default-src 'self'"}
	add := func(name string, sources []string) {
		if len(sources) == 0 {
			return
		}
		directives = append(directives, name+" "+strings.Join(sources, " "))
	}
	add("script-src", c.ScriptSrc)
	add("style-src", c.StyleSrc)
	add("font-src", c.FontSrc)
	add("media-src", c.MediaSrc)
	add("frame-ancestors", c.FrameAncestors)
	return strings.Join(directives, "; ")
}

// Config is loaded once at startup and must not be modified afterwards.
type Config struct {
	// Server
	Host string
	Port string
	Env  string

	// Completion
	ChatProvider    string
	ChatTimeout     time.Duration
	GeminiAPIKey    string
	GeminiModel     string
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	OpenAIChatModel string

	// Transcription
	TranscribeProvider string
	TranscribeTimeout  time.Duration
	AssemblyAIAPIKey   string
	GoogleSpeechAPIKey string
	SpeechLanguage     string

	// Uploads
	UploadDir     string
	MaxUploadSize string

	// Browser policy
	AllowedOrigins []string
	CSP            CSPConfig
}

// Load reads the configuration from the environment. A .env file in the
// working directory is honoured when present.
func Load() *Config {
	godotenv.Load()

	origins := uniqueNonEmpty(append(
		[]string{getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"), defaultProductionOrigin},
		getEnvAsListOrDefault("ALLOWED_ORIGINS", nil)...,
	))

	return &Config{
		Host: getEnvOrDefault("HOST", "0.0.0.0"),
		Port: getEnvOrDefault("PORT", "5001"),
		Env:  getEnvOrDefault("ENV", "production"),

		ChatProvider:    strings.ToLower(getEnvOrDefault("CHAT_PROVIDER", ProviderGemini)),
		ChatTimeout:     getEnvAsDurationOrDefault("CHAT_TIMEOUT", 30*time.Second),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-pro"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:   os.Getenv("OPENAI_BASE_URL"),
		OpenAIChatModel: getEnvOrDefault("OPENAI_CHAT_MODEL", "gpt-4o-mini"),

		TranscribeProvider: strings.ToLower(getEnvOrDefault("TRANSCRIBE_PROVIDER", ProviderAssemblyAI)),
		TranscribeTimeout:  getEnvAsDurationOrDefault("TRANSCRIBE_TIMEOUT", 2*time.Minute),
		AssemblyAIAPIKey:   os.Getenv("ASSEMBLYAI_API_KEY"),
		GoogleSpeechAPIKey: os.Getenv("GOOGLE_SPEECH_API_KEY"),
		SpeechLanguage:     getEnvOrDefault("SPEECH_LANGUAGE", "en-US"),

		UploadDir:     getEnvOrDefault("UPLOAD_DIR", filepath.Join(os.TempDir(), "meditrack-chatbot")),
		MaxUploadSize: getEnvAsByteSizeOrDefault("MAX_UPLOAD_SIZE", "25M"),

		AllowedOrigins: origins,
		CSP: CSPConfig{
			ScriptSrc:      getEnvAsListOrDefault("CSP_SCRIPT_SRC", []string{"'self'", "https://cdn.jsdelivr.net"}),
			StyleSrc:       getEnvAsListOrDefault("CSP_STYLE_SRC", []string{"'self'", "https://fonts.googleapis.com"}),
			FontSrc:        getEnvAsListOrDefault("CSP_FONT_SRC", []string{"'self'", "https://fonts.gstatic.com"}),
			MediaSrc:       getEnvAsListOrDefault("CSP_MEDIA_SRC", []string{"'self'", "blob:"}),
			FrameAncestors: getEnvAsListOrDefault("CSP_FRAME_ANCESTORS", append([]string{"'self'"}, origins...)),
		},
	}
}

// IsDevelopment reports whether ENV selects the development profile.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ChatAPIKey returns the credential of the selected completion provider.
func (c *Config) ChatAPIKey() string {
	switch c.ChatProvider {
	case ProviderGemini:
		return c.GeminiAPIKey
	case ProviderOpenAI:
		return c.OpenAIAPIKey
	}
	return ""
}

// TranscribeAPIKey returns the credential of the selected transcription provider.
func (c *Config) TranscribeAPIKey() string {
	switch c.TranscribeProvider {
	case ProviderAssemblyAI:
		return c.AssemblyAIAPIKey
	case ProviderGoogle:
		return c.GoogleSpeechAPIKey
	case ProviderWhisper:
		return c.OpenAIAPIKey
	}
	return ""
}

// MissingCredentials lists the environment variables required by the
// selected providers that are not set. Mock providers need none.
func (c *Config) MissingCredentials() []string {
	var missing []string
	if v := credentialEnv(c.ChatProvider); v != "" && c.ChatAPIKey() == "" {
		missing = append(missing, v)
	}
	if v := credentialEnv(c.TranscribeProvider); v != "" && c.TranscribeAPIKey() == "" {
		missing = append(missing, v)
	}
	return uniqueNonEmpty(missing)
}

func credentialEnv(provider string) string {
	switch provider {
	case ProviderGemini:
		return "GEMINI_API_KEY"
	case ProviderOpenAI, ProviderWhisper:
		return "OPENAI_API_KEY"
	case ProviderAssemblyAI:
		return "ASSEMBLYAI_API_KEY"
	case ProviderGoogle:
		return "GOOGLE_SPEECH_API_KEY"
	}
	return ""
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}

// getEnvAsByteSizeOrDefault accepts sizes such as 512K or 25M.
func getEnvAsByteSizeOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	if n, err := bytes.Parse(val); err != nil || n <= 0 {
		return defaultVal
	}
	return val
}

// getEnvAsListOrDefault splits a comma separated variable, dropping blanks.
func getEnvAsListOrDefault(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	list := uniqueNonEmpty(strings.Split(val, ","))
	if len(list) == 0 {
		return defaultVal
	}
	return list
}

func uniqueNonEmpty(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
