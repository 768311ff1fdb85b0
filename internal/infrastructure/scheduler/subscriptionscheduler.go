// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/goroutine"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

// Expirer marks lapsed subscriptions and reports how many it changed.
type Expirer interface {
	Execute(ctx context.Context) (int, error)
}

// SubscriptionScheduler flips ACTIVE subscriptions whose expires_at has
// passed to EXPIRED. Plan resolution only looks at ACTIVE rows, so users
// fall back to the baseline plan once this has run.
type SubscriptionScheduler struct {
	expirer  Expirer
	logger   logger.Interface
	interval time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewSubscriptionScheduler(expirer Expirer, interval time.Duration, log logger.Interface) *SubscriptionScheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	return &SubscriptionScheduler{
		expirer:  expirer,
		logger:   log,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

func (s *SubscriptionScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting subscription scheduler", "interval", s.interval)

	s.wg.Add(1)
	goroutine.SafeGo(s.logger, "subscription-scheduler", func() {
		defer s.wg.Done()
		s.runLoop(ctx)
	})
}

// Stop is safe to call more than once.
func (s *SubscriptionScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Infow("stopping subscription scheduler")
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("subscription scheduler stopped")
	})
}

// RunOnce processes expired subscriptions synchronously.
func (s *SubscriptionScheduler) RunOnce(ctx context.Context) {
	s.processExpiredSubscriptions(ctx)
}

func (s *SubscriptionScheduler) runLoop(ctx context.Context) {
	s.processExpiredSubscriptions(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("subscription scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.processExpiredSubscriptions(ctx)
		}
	}
}

func (s *SubscriptionScheduler) processExpiredSubscriptions(ctx context.Context) {
	startTime := time.Now()

	expiredCount, err := s.expirer.Execute(ctx)
	if err != nil {
		s.logger.Errorw("failed to process expired subscriptions",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if expiredCount > 0 {
		s.logger.Infow("expired subscriptions processed",
			"count", expiredCount,
			"duration", time.Since(startTime),
		)
	} else {
		s.logger.Debugw("no expired subscriptions to process",
			"duration", time.Since(startTime),
		)
	}
}
