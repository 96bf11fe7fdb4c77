package sweep

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingPurger struct {
	calls    atomic.Int64
	inFlight atomic.Int64
	overlap  atomic.Bool
	delay    time.Duration
	err      error
}

func (p *countingPurger) PurgeStale(context.Context) (int64, error) {
	if p.inFlight.Add(1) > 1 {
		p.overlap.Store(true)
	}
	defer p.inFlight.Add(-1)

	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	p.calls.Add(1)
	return 0, p.err
}

func TestSweeper_RunsPeriodically(t *testing.T) {
	p := &countingPurger{}
	s := New(p, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()
	<-done

	assert.GreaterOrEqual(t, p.calls.Load(), int64(2))
}

func TestSweeper_RunsDoNotOverlap(t *testing.T) {
	p := &countingPurger{delay: 25 * time.Millisecond}
	s := New(p, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	time.Sleep(120 * time.Millisecond)
	cancel()
	<-done

	assert.False(t, p.overlap.Load())
	assert.GreaterOrEqual(t, p.calls.Load(), int64(2))
}

func TestSweeper_KeepsGoingAfterErrors(t *testing.T) {
	p := &countingPurger{err: errors.New("db down")}
	s := New(p, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	time.Sleep(60 * time.Millisecond)
	cancel()
	<-done

	assert.GreaterOrEqual(t, p.calls.Load(), int64(2))
}
