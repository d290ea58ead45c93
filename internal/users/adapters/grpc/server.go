// Package grpc предоставляет gRPC сервер сервиса пользователей.
package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"

	"plazausers/internal/users/config"
	usersv1 "plazausers/pkg/api/users/v1"
	"plazausers/pkg/logger"
)

// Константы для логирования.
const (
	LogServerStarting = "Starting gRPC server"
	LogServerStarted  = "gRPC server started"
	LogServerStopping = "Stopping gRPC server"
	LogServerStopped  = "gRPC server stopped"
	ErrServerStart    = "failed to start gRPC server"
	ErrServerServe    = "gRPC server stopped with error"
)

// Server представляет gRPC сервер.
type Server struct {
	cfg    *config.GRPCConfig
	server *grpc.Server
	health *health.Server
}

// New создает сервер с цепочкой перехватчиков: идентификатор запроса,
// восстановление после паники, журнал вызовов и проверка токена.
func New(cfg *config.GRPCConfig, auth Authenticator) *Server {
	if cfg == nil {
		cfg = &config.GRPCConfig{Host: "0.0.0.0", Port: 50052, Reflection: true}
	}

	opts := []grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			RequestIDInterceptor(),
			RecoveryInterceptor(),
			LoggingInterceptor(),
			AuthInterceptor(auth, DefaultPolicy()),
		),
	}
	if cfg.MaxConnectionIdle > 0 {
		opts = append(opts, grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle: cfg.MaxConnectionIdle,
		}))
	}

	srv := grpc.NewServer(opts...)
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthServer)
	if cfg.Reflection {
		reflection.Register(srv)
	}

	return &Server{
		cfg:    cfg,
		server: srv,
		health: healthServer,
	}
}

// Start слушает адрес из конфигурации и обслуживает запросы в отдельной горутине.
func (s *Server) Start(ctx context.Context) error {
	log := logger.Log(ctx)
	address := s.cfg.GetAddress()

	log.Info(ctx, LogServerStarting, zap.String("address", address))

	listener, err := net.Listen("tcp", address)
	if err != nil {
		log.Error(ctx, ErrServerStart, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrServerStart, err)
	}

	go func() {
		if err := s.Serve(ctx, listener); err != nil {
			log.Error(ctx, ErrServerServe, zap.Error(err))
		}
	}()

	log.Info(ctx, LogServerStarted, zap.String("address", address))
	return nil
}

// Serve обслуживает запросы на lis до остановки сервера.
func (s *Server) Serve(_ context.Context, lis net.Listener) error {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(usersv1.ServiceName, healthpb.HealthCheckResponse_SERVING)

	if err := s.server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

// Stop переводит health в NOT_SERVING и дожидается завершения активных вызовов.
func (s *Server) Stop(ctx context.Context) {
	log := logger.Log(ctx)

	log.Info(ctx, LogServerStopping)
	s.health.Shutdown()
	s.server.GracefulStop()
	log.Info(ctx, LogServerStopped)
}

// RegisterService регистрирует gRPC сервис в сервере используя дескриптор сервиса.
func (s *Server) RegisterService(desc *grpc.ServiceDesc, impl any) {
	s.server.RegisterService(desc, impl)
}
