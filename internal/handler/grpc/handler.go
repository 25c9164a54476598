package grpc

import (
	"github.com/MKhiriev/go-material-keeper/internal/logger"
	"github.com/MKhiriev/go-material-keeper/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the name under which the storage health state is published
// through the standard gRPC health protocol, next to the overall "" entry.
const ServiceName = "materialkeeper.Storage"

// Handler is the root gRPC transport handler.
//
// It exposes the storage health state tracked by [service.HealthService]
// through grpc.health.v1.Health. The state follows the health worker: every
// flip reported through OnChange is mirrored into the health server.
type Handler struct {
	health *health.Server

	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		health:   health.NewServer(),
		services: services,
		logger:   logger,
	}

	// NOT_SERVING until the first check says otherwise.
	h.setServing(false)
	if services != nil && services.HealthService != nil {
		services.HealthService.OnChange(h.setServing)
	}

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the handler's services to srv.
func (h *Handler) Register(srv *grpc.Server) {
	healthpb.RegisterHealthServer(srv, h.health)
	reflection.Register(srv)
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setServing(healthy bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if healthy {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
	h.logger.Debug().Str("status", status.String()).Msg("gRPC health status updated")
}
