package workerpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestPool_RunsAllTasks(t *testing.T) {
	p := New(3, 10)
	results := p.Run(context.Background())

	var done atomic.Int32
	for i := 0; i < 10; i++ {
		p.Submit(func(context.Context) error {
			done.Add(1)
			return nil
		})
	}
	p.Close()

	n := 0
	for r := range results {
		if r.Err != nil {
			t.Fatalf("unexpected err: %v", r.Err)
		}
		n++
	}
	if n != 10 || done.Load() != 10 {
		t.Fatalf("expected 10 results, got %d (done=%d)", n, done.Load())
	}
}

func TestPool_RecoversPanics(t *testing.T) {
	p := New(2, 3)
	results := p.Run(context.Background())

	errBoom := errors.New("boom")
	p.Submit(func(context.Context) error { panic("kaboom") })
	p.Submit(func(context.Context) error { return errBoom })
	p.Submit(func(context.Context) error { return nil })
	p.Close()

	var failed, ok int
	for r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		ok++
	}
	if failed != 2 || ok != 1 {
		t.Fatalf("expected 2 failed and 1 ok, got %d and %d", failed, ok)
	}
}

func TestPool_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := New(1, 1)
	results := p.Run(ctx)

	cancel()

	select {
	case _, open := <-results:
		for open {
			_, open = <-results
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("results channel not closed after cancel")
	}
}

func TestPool_BoundsConcurrency(t *testing.T) {
	const workers = 2
	p := New(workers, 8)
	results := p.Run(context.Background())

	var running, peak atomic.Int32
	for i := 0; i < 8; i++ {
		p.Submit(func(context.Context) error {
			n := running.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			running.Add(-1)
			return nil
		})
	}
	p.Close()
	for range results {
	}

	if peak.Load() > workers {
		t.Fatalf("expected at most %d concurrent tasks, got %d", workers, peak.Load())
	}
}
