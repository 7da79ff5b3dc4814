package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/IamSagAr28/meditrack-health-app/domain"
	"github.com/IamSagAr28/meditrack-health-app/internal/web"
	"github.com/IamSagAr28/meditrack-health-app/usecase"
)

const (
	audioField = "audio"
	pageTitle  = "MediTrack Health Assistant"
)

// Handler serves the chatbot endpoints
type Handler struct {
	chat          *usecase.ChatService
	transcription *usecase.TranscriptionService
	logger        *zap.Logger
}

// NewHandler creates a new Handler
func NewHandler(chat *usecase.ChatService, transcription *usecase.TranscriptionService, logger *zap.Logger) *Handler {
	return &Handler{
		chat:          chat,
		transcription: transcription,
		logger:        logger,
	}
}

// Index renders the chat UI
func (h *Handler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, web.IndexPage, web.PageData{Title: pageTitle, BasePath: BasePath})
}

// Test renders the endpoint diagnostics page
func (h *Handler) Test(c echo.Context) error {
	return c.Render(http.StatusOK, web.TestPage, web.PageData{Title: pageTitle + " - Test", BasePath: BasePath})
}

// Health reports that the process is serving requests
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: "meditrack-chatbot",
	})
}

// Chat forwards user text to the completion provider
func (h *Handler) Chat(c echo.Context) error {
	var req ChatRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &httpErr):
			return httpErr
		case errors.Is(err, io.EOF):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgNoJSON})
		default:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		}
	}

	input := strings.TrimSpace(req.UserInput)
	if input == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgNoInput})
	}

	reply, err := h.chat.Reply(c.Request().Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotConfigured):
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgNotConfigured})
		case errors.Is(err, domain.ErrEmptyResponse):
			h.logger.Warn("Completion provider returned no content", requestIDField(c))
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgNoModelResponse})
		default:
			h.logger.Error("Error in chat endpoint", requestIDField(c), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgProcessing})
		}
	}

	return c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}

// Transcribe forwards an uploaded recording to the transcription provider
func (h *Handler) Transcribe(c echo.Context) error {
	fh, err := c.FormFile(audioField)
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgNoAudio})
	}

	transcript, err := h.transcription.Transcribe(c.Request().Context(), fh)
	if err != nil {
		var storeErr *usecase.StoreError
		switch {
		case errors.Is(err, domain.ErrEmptyAudio):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgEmptyAudio})
		case errors.Is(err, domain.ErrNotConfigured):
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgNotConfigured})
		case errors.Is(err, domain.ErrEmptyResponse):
			h.logger.Warn("Transcription provider returned no text", requestIDField(c))
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgNoTranscript})
		case errors.As(err, &storeErr):
			h.logger.Error("Error in transcribe endpoint", requestIDField(c), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgProcessing})
		default:
			h.logger.Error("Transcription error", requestIDField(c), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgTranscribeError})
		}
	}

	return c.JSON(http.StatusOK, TranscribeResponse{Transcript: transcript})
}

func requestIDField(c echo.Context) zap.Field {
	return zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID))
}
