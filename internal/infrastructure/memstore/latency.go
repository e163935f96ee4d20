// Package memstore provides the in-memory repository backend. It keeps
// every collection in process memory behind a mutex, hands out deep
// copies, and simulates network latency per operation class so callers
// behave as they would against a remote service.
package memstore

import (
	"context"
	"time"

	"github.com/esit-pro/service-desk/internal/shared/config"
)

// latency applies the configured delay budget for each operation class.
// The sleep honors context cancellation so callers are never held past
// their deadline; a zero budget is a no-op.
type latency struct {
	cfg config.LatencyConfig
}

func (l latency) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (l latency) list(ctx context.Context) error   { return l.wait(ctx, l.cfg.List()) }
func (l latency) get(ctx context.Context) error    { return l.wait(ctx, l.cfg.Get()) }
func (l latency) mutate(ctx context.Context) error { return l.wait(ctx, l.cfg.Mutate()) }
func (l latency) search(ctx context.Context) error { return l.wait(ctx, l.cfg.Search()) }
func (l latency) batch(ctx context.Context) error  { return l.wait(ctx, l.cfg.Batch()) }
