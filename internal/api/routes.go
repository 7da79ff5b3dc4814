package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/IamSagAr28/meditrack-health-app/internal/config"
	"github.com/IamSagAr28/meditrack-health-app/internal/web"
)

// BasePath is where the chatbot is mounted
const BasePath = "/chatbot"

const chatBodyLimit = "64K"

// NewServer builds the echo instance with middleware and routes
func NewServer(cfg *config.Config, h *Handler, logger *zap.Logger) (*echo.Echo, error) {
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger))
	e.Use(Recover(logger))
	e.Use(SecurityHeaders(cfg))
	e.Use(CORS(cfg))

	InitRoutes(e, h, cfg)
	return e, nil
}

// InitRoutes initializes all routes
func InitRoutes(e *echo.Echo, h *Handler, cfg *config.Config) {
	e.GET("/health", h.Health)

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, BasePath+"/")
	})

	chatbot := e.Group(BasePath)
	chatbot.GET("", h.Index)
	chatbot.GET("/", h.Index)
	chatbot.GET("/test", h.Test)
	chatbot.POST("/chat", h.Chat, middleware.BodyLimit(chatBodyLimit))
	chatbot.POST("/transcribe", h.Transcribe, middleware.BodyLimit(cfg.MaxUploadSize))
	chatbot.StaticFS("/static", web.Static())
}
