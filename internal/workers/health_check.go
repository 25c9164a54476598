// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-material-keeper/internal/logger"
	"github.com/MKhiriev/go-material-keeper/internal/service"
)

// HealthCheckWorker probes storage once on start and then every interval.
// The outcome is recorded by the health service, which notifies its
// listeners (the gRPC health handler) when it changes.
type HealthCheckWorker struct {
	health   service.HealthService
	interval time.Duration
	logger   *logger.Logger
}

func NewHealthCheckWorker(health service.HealthService, interval time.Duration, logger *logger.Logger) *HealthCheckWorker {
	return &HealthCheckWorker{
		health:   health,
		interval: interval,
		logger:   logger,
	}
}

func (w *HealthCheckWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("health check worker started")
	defer w.logger.Info().Msg("health check worker stopped")

	w.check(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

func (w *HealthCheckWorker) check(ctx context.Context) {
	checkCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	if err := w.health.Check(checkCtx); err != nil {
		w.logger.Debug().Err(err).Str("func", "*HealthCheckWorker.check").Msg("health check failed")
	}
}
