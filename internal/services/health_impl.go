// Package services wires the agent's components (supervisor, roster cache,
// bus, store, auth) into the goa-generated service interfaces
// design/design.go defines.
package services

import (
	"context"

	health "edgecam/gen/health"

	"github.com/nats-io/nats.go"

	"edgecam/internal/roster"
)

// HealthImplementation implements the health service.
type HealthImplementation struct {
	bus         *nats.Conn
	rosterCache *roster.Cache
}

// NewHealthService constructs the health service. bus may be nil in tests.
func NewHealthService(bus *nats.Conn, rosterCache *roster.Cache) health.Service {
	return &HealthImplementation{bus: bus, rosterCache: rosterCache}
}

// Healthz implements the liveness probe: the process is up if we reach here.
func (h *HealthImplementation) Healthz(ctx context.Context) error {
	return nil
}

// Readyz implements the readiness probe: the bus connection must be up and
// the roster cache must have built at least an empty matrix.
func (h *HealthImplementation) Readyz(ctx context.Context) error {
	if h.bus != nil && !h.bus.IsConnected() {
		return &health.NotReadyError{Message: "nats connection not ready"}
	}
	if h.rosterCache == nil || h.rosterCache.Current() == nil {
		return &health.NotReadyError{Message: "roster cache not initialized"}
	}
	return nil
}
