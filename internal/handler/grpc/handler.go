package grpc

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/MKhiriev/go-ads-board/internal/handler/rpc"
	"github.com/MKhiriev/go-ads-board/internal/logger"
	"github.com/MKhiriev/go-ads-board/internal/service"
	"github.com/MKhiriev/go-ads-board/internal/utils"
	"github.com/MKhiriev/go-ads-board/models"
)

const (
	authorizationKey = "authorization"
	traceIDKey       = "x-trace-id"
	bearerPrefix     = "Bearer "
)

// Handler serves the RPC facade over gRPC. The caller presents the same
// signed session token the HTTP surface keeps in its cookie, as
// "authorization: Bearer <token>" metadata.
type Handler struct {
	sessions   service.SessionService
	dispatcher *rpc.Dispatcher

	logger *logger.Logger
}

func NewHandler(sessions service.SessionService, dispatcher *rpc.Dispatcher, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		sessions:   sessions,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Register attaches the facade service to server.
func (h *Handler) Register(server grpc.ServiceRegistrar) {
	RegisterRPCServer(server, h)
}

// Interceptors returns the unary interceptors the server must be built with.
func (h *Handler) Interceptors() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{h.traceInterceptor, h.sessionInterceptor}
}

// Call never fails at the transport level; outcomes are in the response.
func (h *Handler) Call(ctx context.Context, request *models.RPCRequest) (*models.RPCResponse, error) {
	identity, _ := utils.GetIdentityFromContext(ctx)
	response := h.dispatcher.Call(ctx, identity, *request)

	logger.FromContext(ctx).Info().
		Str("method", request.Method).
		Int64("user_id", identity.UserID).
		Bool("success", response.Success).
		Msg("rpc call")

	return &response, nil
}

func (h *Handler) traceInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := firstMetadata(ctx, traceIDKey)
	if traceID == "" {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	return handler(l.WithContext(ctx), req)
}

// sessionInterceptor resolves the bearer token. A missing or rejected token
// leaves the caller anonymous, the dispatcher then refuses protected methods.
func (h *Handler) sessionInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	token, ok := strings.CutPrefix(firstMetadata(ctx, authorizationKey), bearerPrefix)
	if !ok || token == "" {
		return handler(ctx, req)
	}

	identity, err := h.sessions.Resolve(ctx, token)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("bearer token rejected")
		return handler(ctx, req)
	}

	return handler(utils.WithIdentity(ctx, identity), req)
}

func firstMetadata(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}
