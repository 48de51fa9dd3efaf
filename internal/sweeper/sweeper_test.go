package sweeper

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeSweep struct {
	mu      sync.Mutex
	calls   int
	deleted int64
	err     error
}

func (f *fakeSweep) SweepExpiredUnpaid(ctx context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.deleted, f.err
}

func (f *fakeSweep) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestSweepNow(t *testing.T) {
	t.Run("Runs one sweep pass", func(t *testing.T) {
		sweep := &fakeSweep{deleted: 2}
		service := New(sweep, time.Minute)

		service.SweepNow(context.Background())
		assert.Equal(t, 1, sweep.callCount())
	})

	t.Run("Swallows sweep errors", func(t *testing.T) {
		sweep := &fakeSweep{err: errors.New("db error")}
		service := New(sweep, time.Minute)

		service.SweepNow(context.Background())
		assert.Equal(t, 1, sweep.callCount())
	})
}

func TestStart(t *testing.T) {
	sweep := &fakeSweep{}
	service := New(sweep, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	service.Start(ctx)

	assert.Eventually(t, func() bool {
		return sweep.callCount() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	calls := sweep.callCount()
	time.Sleep(30 * time.Millisecond)
	assert.LessOrEqual(t, sweep.callCount(), calls+1)
}
