package health

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/tair/shop-admin/pkg/logger"
)

// Server exposes the standard gRPC health protocol for a service, backed by
// a periodic database ping. Load balancers and the gateway probe it instead
// of the HTTP /health endpoint.
type Server struct {
	grpcServer   *grpc.Server
	healthServer *health.Server
	service      string
	db           *sql.DB
}

// NewServer creates a health server for the named service
func NewServer(service string, db *sql.DB) *Server {
	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.UnaryInterceptor(LoggingInterceptor),
	)
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	return &Server{
		grpcServer:   grpcServer,
		healthServer: healthServer,
		service:      service,
		db:           db,
	}
}

// Serve listens on addr and keeps the reported status in sync with the
// database until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.healthServer.SetServingStatus(s.service, grpc_health_v1.HealthCheckResponse_SERVING)

	go s.watchDatabase(ctx)
	go func() {
		<-ctx.Done()
		s.grpcServer.GracefulStop()
	}()

	logger.Logger.Info().
		Str("service", s.service).
		Str("addr", addr).
		Msg("gRPC health server started")

	return s.grpcServer.Serve(lis)
}

func (s *Server) watchDatabase(ctx context.Context) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			status := grpc_health_v1.HealthCheckResponse_SERVING
			if err := s.db.PingContext(ctx); err != nil {
				status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
				logger.Logger.Error().Err(err).Msg("Health check database ping failed")
			}
			s.healthServer.SetServingStatus(s.service, status)
		}
	}
}
