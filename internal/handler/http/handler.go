package http

import (
	"time"

	"github.com/MKhiriev/go-ads-board/internal/handler/rpc"
	"github.com/MKhiriev/go-ads-board/internal/logger"
	"github.com/MKhiriev/go-ads-board/internal/service"
)

// Settings holds the transport parameters of the HTTP surface.
type Settings struct {
	// CookieName is the name of the session cookie.
	CookieName string

	// MaxUploadSize caps multipart request bodies, in bytes.
	MaxUploadSize int64

	// RequestTimeout bounds each request's context; zero disables it.
	RequestTimeout time.Duration
}

type Handler struct {
	services   *service.Services
	dispatcher *rpc.Dispatcher
	settings   Settings

	logger *logger.Logger
}

func NewHandler(services *service.Services, dispatcher *rpc.Dispatcher, settings Settings, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		dispatcher: dispatcher,
		settings:   settings,
		logger:     logger,
	}
}
