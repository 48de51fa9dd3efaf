package sweeper

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sweep removes expired unpaid appointments and reports how many went.
type Sweep interface {
	SweepExpiredUnpaid(ctx context.Context, now time.Time) (int64, error)
}

// Service drives the periodic expiry sweep. The delete itself is a single
// guarded statement, so concurrent runs are safe; the ticker just bounds how
// stale an expired appointment can get.
type Service struct {
	sweep    Sweep
	interval time.Duration
}

func New(sweep Sweep, interval time.Duration) *Service {
	return &Service{sweep: sweep, interval: interval}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Sweeper service started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			return
		case <-ticker.C:
			s.SweepNow(ctx)
		}
	}
}

// SweepNow runs one sweep pass; exported so the app can trigger it on demand.
func (s *Service) SweepNow(ctx context.Context) {
	deleted, err := s.sweep.SweepExpiredUnpaid(ctx, time.Now())
	if err != nil {
		zap.L().Error("Failed to sweep expired appointments", zap.Error(err))
		return
	}
	if deleted > 0 {
		zap.L().Info("Swept expired unpaid appointments", zap.Int64("deleted", deleted))
	}
}
