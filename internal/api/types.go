package api

// ChatRequest represents the request payload for the chat endpoint
type ChatRequest struct {
	UserInput string `json:"user_input"`
}

// ChatResponse represents a successful chat reply
type ChatResponse struct {
	Reply string `json:"reply"`
}

// TranscribeResponse represents a successful transcription
type TranscribeResponse struct {
	Transcript string `json:"transcript"`
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Client facing error messages. Upstream details are only ever logged.
const (
	msgNoJSON          = "No JSON data provided"
	msgInvalidBody     = "Invalid request body"
	msgNoInput         = "No input provided"
	msgNotConfigured   = "API key not configured"
	msgNoModelResponse = "No response from AI model"
	msgNoAudio         = "No audio file provided"
	msgEmptyAudio      = "Empty audio file"
	msgNoTranscript    = "Could not transcribe audio"
	msgTranscribeError = "Error transcribing audio"
	msgProcessing      = "An error occurred processing your request"
	msgUnexpected      = "An unexpected error occurred"
)
