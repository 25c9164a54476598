package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-material-keeper/internal/logger"
	"github.com/MKhiriev/go-material-keeper/internal/store"
)

type healthService struct {
	checker store.HealthChecker

	mu        sync.RWMutex
	checked   bool
	healthy   bool
	listeners []func(healthy bool)

	logger *logger.Logger
}

func NewHealthService(checker store.HealthChecker, logger *logger.Logger) HealthService {
	return &healthService{checker: checker, logger: logger}
}

// Check implements [HealthService]. Listeners run after the state is
// updated, outside the lock.
func (h *healthService) Check(ctx context.Context) error {
	err := h.checker.Ping(ctx)
	healthy := err == nil

	h.mu.Lock()
	changed := !h.checked || h.healthy != healthy
	h.checked = true
	h.healthy = healthy
	listeners := append([]func(bool){}, h.listeners...)
	h.mu.Unlock()

	if changed {
		if healthy {
			h.logger.Info().Str("func", "*healthService.Check").Msg("storage is reachable")
		} else {
			h.logger.Err(err).Str("func", "*healthService.Check").Msg("storage is unreachable")
		}
		for _, fn := range listeners {
			fn(healthy)
		}
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}

func (h *healthService) Healthy() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.healthy
}

// OnChange implements [HealthService]. If a check already ran, fn is called
// right away with the current state.
func (h *healthService) OnChange(fn func(healthy bool)) {
	h.mu.Lock()
	h.listeners = append(h.listeners, fn)
	checked, healthy := h.checked, h.healthy
	h.mu.Unlock()

	if checked {
		fn(healthy)
	}
}
