package grpc

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-material-keeper/internal/logger"
	"github.com/MKhiriev/go-material-keeper/internal/mock"
	"github.com/MKhiriev/go-material-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func status(t *testing.T, h *Handler, name string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestNewHandler_NilServices(t *testing.T) {
	h := NewHandler(nil, logger.Nop())

	require.NotNil(t, h)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, h, ServiceName))
}

func TestHandler_FollowsHealthService(t *testing.T) {
	ctrl := gomock.NewController(t)
	healthSvc := mock.NewMockHealthService(ctrl)

	var listener func(bool)
	healthSvc.EXPECT().OnChange(gomock.Any()).Do(func(fn func(bool)) { listener = fn })

	h := NewHandler(&service.Services{HealthService: healthSvc}, logger.Nop())
	require.NotNil(t, listener)

	listener(true)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(t, h, ServiceName))

	listener(false)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, h, ServiceName))
}

func TestHandler_Shutdown(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	h.setServing(true)

	h.Shutdown()
	h.setServing(true)

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, h, ""))
}
