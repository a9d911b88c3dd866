package grpc

import (
	"context"
	"time"

	"github.com/DRSN-tech/online-sales/pkg/logger"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Pinger — хранилище, доступность которого определяет статус сервиса.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker периодически пингует хранилище и выставляет SERVING или NOT_SERVING.
type HealthChecker struct {
	health   *health.Server
	store    Pinger
	service  string
	interval time.Duration
	logger   logger.Logger
}

func NewHealthChecker(hs *health.Server, store Pinger, service string, interval time.Duration, logger logger.Logger) *HealthChecker {
	return &HealthChecker{
		health:   hs,
		store:    store,
		service:  service,
		interval: interval,
		logger:   logger,
	}
}

// Check выполняет одну проверку и возвращает выставленный статус.
func (h *HealthChecker) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, h.interval)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := h.store.Ping(ctx); err != nil {
		h.logger.Errorf(err, "storage ping failed, service %s is not serving", h.service)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.health.SetServingStatus(h.service, status)
	h.health.SetServingStatus("", status)
	return status
}

// Run проверяет хранилище сразу и затем каждые interval до отмены ctx.
func (h *HealthChecker) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.Check(ctx)
	for {
		select {
		case <-ticker.C:
			h.Check(ctx)
		case <-ctx.Done():
			return
		}
	}
}
