package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

type countingExpirer struct {
	calls atomic.Int32
	err   error
}

func (c *countingExpirer) Execute(context.Context) (int, error) {
	c.calls.Add(1)
	return 1, c.err
}

func TestSubscriptionScheduler_RunsImmediatelyAndOnTick(t *testing.T) {
	exp := &countingExpirer{}
	s := NewSubscriptionScheduler(exp, 10*time.Millisecond, logger.NewLogger())

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return exp.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	s.Stop()
	s.Stop()

	after := exp.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, exp.calls.Load())
}

func TestSubscriptionScheduler_StopsOnContextCancel(t *testing.T) {
	exp := &countingExpirer{err: errors.New("db down")}
	s := NewSubscriptionScheduler(exp, time.Hour, logger.NewLogger())

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	assert.Eventually(t, func() bool { return exp.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestSubscriptionScheduler_RunOnce(t *testing.T) {
	exp := &countingExpirer{}
	NewSubscriptionScheduler(exp, 0, logger.NewLogger()).RunOnce(context.Background())
	assert.Equal(t, int32(1), exp.calls.Load())
}
