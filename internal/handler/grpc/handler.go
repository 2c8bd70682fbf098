// Package grpc exposes the operational gRPC surface of the server: the
// standard health service, reflection and request logging.
package grpc

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/internal/utils"
	"github.com/MKhiriev/go-qr-keeper/models"
)

// HistoryServiceName is the health-check name reporting whether the scan
// history can be read.
const HistoryServiceName = "qrkeeper.History"

const traceIDMetadataKey = "x-trace-id"

// Handler is the root gRPC transport handler.
//
// It owns the health server whose statuses follow the reachability of the
// history storage. A handler instance is created once at startup and shared
// by the gRPC server.
type Handler struct {
	services *service.Services
	health   *health.Server
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// Register attaches the health and reflection services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// CheckHistory probes the history storage and publishes the outcome for both
// HistoryServiceName and the overall server status.
func (h *Handler) CheckHistory(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	servingStatus := healthpb.HealthCheckResponse_SERVING
	if _, err := h.services.HistoryService.List(ctx, models.HistoryFilter{Limit: 1}); err != nil {
		h.logger.Err(err).Str("func", "*Handler.CheckHistory").Msg("history is unavailable")
		servingStatus = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.health.SetServingStatus(HistoryServiceName, servingStatus)
	h.health.SetServingStatus("", servingStatus)
	return servingStatus
}

// Shutdown reports NOT_SERVING for every service and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLoggingInterceptor attaches a trace-scoped logger to the context and
// writes one log line per call, mirroring the HTTP access log.
func (h *Handler) UnaryLoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDMetadataKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = h.traceIDs.Generate()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = l.WithContext(utils.WithTraceID(ctx, traceID))

	start := time.Now()
	resp, err := handler(ctx, req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
