package handler

import (
	"github.com/MKhiriev/go-ads-board/internal/config"
	"github.com/MKhiriev/go-ads-board/internal/handler/grpc"
	"github.com/MKhiriev/go-ads-board/internal/handler/http"
	"github.com/MKhiriev/go-ads-board/internal/handler/rpc"
	"github.com/MKhiriev/go-ads-board/internal/logger"
	"github.com/MKhiriev/go-ads-board/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds a transport handler for every configured address.
// Both transports share one RPC dispatcher.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}
	dispatcher := rpc.NewDispatcher(services.AdService, services.UserService, logger)

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, dispatcher, http.Settings{
			CookieName:     cfg.App.SessionCookieName,
			MaxUploadSize:  cfg.Server.MaxUploadSize,
			RequestTimeout: cfg.Server.RequestTimeout,
		}, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services.SessionService, dispatcher, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
