package service

import (
	"context"
	"time"

	"rfid_tracking/internal/logger"
	"rfid_tracking/internal/repository"
)

const (
	defaultIdleTTL    = 30 * time.Minute
	defaultSweepEvery = time.Minute
)

// JanitorService drops page sessions that stopped talking to us, e.g. a
// browser tab closed without unmounting.
type JanitorService struct {
	repo repository.PageRepo
	ttl  time.Duration
	log  *logger.Logger
}

func NewJanitorService(repo repository.PageRepo, ttl time.Duration, log *logger.Logger) *JanitorService {
	if ttl <= 0 {
		ttl = defaultIdleTTL
	}
	return &JanitorService{repo: repo, ttl: ttl, log: log}
}

// Run sweeps at the given interval until ctx is canceled.
func (s *JanitorService) Run(ctx context.Context, tick time.Duration) {
	if tick <= 0 {
		tick = defaultSweepEvery
	}
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			s.Sweep(ctx, now)
		}
	}
}

// Sweep evicts sessions idle for longer than the TTL at instant now.
func (s *JanitorService) Sweep(ctx context.Context, now time.Time) []string {
	evicted, err := s.repo.DeleteIdle(ctx, now.UTC().Add(-s.ttl))
	if err != nil {
		if s.log != nil {
			s.log.Errorw("janitor_sweep_failed", "err", err)
		}
		return nil
	}
	if len(evicted) > 0 && s.log != nil {
		s.log.Infow("janitor_evicted_pages", "count", len(evicted), "ids", evicted)
	}
	return evicted
}
