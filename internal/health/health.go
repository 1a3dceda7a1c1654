// Package health exposes the standard gRPC health checking service.
package health

import (
	"context"
	"net"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported next to the overall status.
const ServiceName = "exercise-tracker"

// Pinger checks a backing dependency.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server wraps a gRPC server that only carries the health service.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
}

// NewServer creates a health server reporting SERVING for the whole process and ServiceName.
func NewServer() *Server {
	s := &Server{
		grpc:   grpc.NewServer(),
		health: health.NewServer(),
	}
	healthpb.RegisterHealthServer(s.grpc, s.health)
	s.SetServing(true)
	return s
}

// SetServing flips the status of ServiceName and the overall status.
func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Check pings the store and updates the reported status.
// A nil pinger leaves the status unchanged.
func (s *Server) Check(ctx context.Context, p Pinger) {
	if p == nil {
		return
	}
	if err := p.PingContext(ctx); err != nil {
		logger.Log.Warnw("store ping failed", "error", err)
		s.SetServing(false)
		return
	}
	s.SetServing(true)
}

// Serve blocks serving on lis until Stop is called.
func (s *Server) Serve(lis net.Listener) error {
	logger.Log.Infow("gRPC health server listening", "addr", lis.Addr().String())
	return s.grpc.Serve(lis)
}

// Stop marks the service as not serving and stops the server gracefully.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
