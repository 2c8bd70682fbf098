package server

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-qr-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-qr-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.UnaryLoggingInterceptor))
	handler.Register(s)

	return &grpcServer{
		handler: handler,
		server:  s,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Err(err).Str("func", "*grpcServer.RunServer").Str("address", g.address).Msg("gRPC server Listen")
		return
	}

	g.handler.CheckHistory(context.Background())

	g.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(lis); err != nil {
		g.logger.Err(err).Str("func", "*grpcServer.RunServer").Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
