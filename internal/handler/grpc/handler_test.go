package grpc

import (
	"bytes"
	"context"
	"errors"
	"net"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/internal/utils"
	"github.com/MKhiriev/go-qr-keeper/models"
)

type stubHistoryService struct {
	service.HistoryService
	err error
}

func (s stubHistoryService) List(context.Context, models.HistoryFilter) ([]models.ResultView, error) {
	return nil, s.err
}

// startServer serves h over an in-memory listener and returns a health client.
func startServer(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer(grpc.UnaryInterceptor(h.UnaryLoggingInterceptor))
	h.Register(s)

	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func TestHandler_HealthFollowsHistory(t *testing.T) {
	tests := []struct {
		name       string
		historyErr error
		want       healthpb.HealthCheckResponse_ServingStatus
	}{
		{
			name: "history readable",
			want: healthpb.HealthCheckResponse_SERVING,
		},
		{
			name:       "history broken",
			historyErr: errors.New("connection refused"),
			want:       healthpb.HealthCheckResponse_NOT_SERVING,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&service.Services{HistoryService: stubHistoryService{err: tt.historyErr}}, logger.Nop())
			client := startServer(t, h)

			assert.Equal(t, tt.want, h.CheckHistory(context.Background()))

			for _, name := range []string{"", HistoryServiceName} {
				resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
				require.NoError(t, err)
				assert.Equal(t, tt.want, resp.GetStatus(), name)
			}
		})
	}
}

func TestHandler_UnknownServiceIsNotFound(t *testing.T) {
	client := startServer(t, NewHandler(&service.Services{}, logger.Nop()))

	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "qrkeeper.Unknown"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestHandler_Shutdown(t *testing.T) {
	h := NewHandler(&service.Services{HistoryService: stubHistoryService{}}, logger.Nop())
	client := startServer(t, h)

	h.CheckHistory(context.Background())
	h.Shutdown()

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: HistoryServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestUnaryLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&service.Services{}, &logger.Logger{Logger: zerolog.New(&buf)})

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(traceIDMetadataKey, "trace-7"))
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	var seenTraceID string
	resp, err := h.UnaryLoggingInterceptor(ctx, "req", info, func(ctx context.Context, req any) (any, error) {
		seenTraceID, _ = utils.GetTraceIDFromContext(ctx)
		return "resp", status.Error(codes.Unavailable, "down")
	})

	assert.Equal(t, "resp", resp)
	assert.Equal(t, codes.Unavailable, status.Code(err))
	assert.Equal(t, "trace-7", seenTraceID)
	assert.Contains(t, buf.String(), `"trace_id":"trace-7"`)
	assert.Contains(t, buf.String(), `"method":"/grpc.health.v1.Health/Check"`)
	assert.Contains(t, buf.String(), `"code":"Unavailable"`)
}

func TestUnaryLoggingInterceptor_GeneratesTraceID(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	info := &grpc.UnaryServerInfo{FullMethod: "/x/y"}

	var seenTraceID string
	_, err := h.UnaryLoggingInterceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		seenTraceID, _ = utils.GetTraceIDFromContext(ctx)
		return nil, nil
	})

	require.NoError(t, err)
	assert.NotEmpty(t, seenTraceID)
}
