package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// indexedResult implements Result
type indexedResult struct {
	index int
	err   error
}

func (r *indexedResult) GetError() error { return r.err }

// indexedJob implements Job
type indexedJob struct {
	index     int
	duration  time.Duration
	shouldErr bool
	executed  *int32
}

func (j *indexedJob) Execute(ctx context.Context) Result {
	if j.executed != nil {
		atomic.AddInt32(j.executed, 1)
	}
	if j.duration > 0 {
		select {
		case <-time.After(j.duration):
		case <-ctx.Done():
			return &indexedResult{index: j.index, err: ctx.Err()}
		}
	}
	if j.shouldErr {
		return &indexedResult{index: j.index, err: errors.New("job error")}
	}
	return &indexedResult{index: j.index}
}

func TestNewPool_WorkerFloor(t *testing.T) {
	for _, workers := range []int{0, -1} {
		p := NewPool(context.Background(), workers)
		if p.workers != 1 {
			t.Errorf("NewPool(%d): expected 1 worker, got %d", workers, p.workers)
		}
	}
	if p := NewPool(context.Background(), 5); p.workers != 5 {
		t.Errorf("expected 5 workers, got %d", p.workers)
	}
}

func TestPool_ExecutesAllJobs(t *testing.T) {
	pool := NewPool(context.Background(), 3)
	pool.Start()

	var executed int32
	const count = 20
	for i := 0; i < count; i++ {
		pool.Submit(&indexedJob{index: i, executed: &executed})
	}

	results := pool.Wait()
	if len(results) != count {
		t.Fatalf("expected %d results, got %d", count, len(results))
	}
	if n := atomic.LoadInt32(&executed); n != count {
		t.Errorf("expected %d executions, got %d", count, n)
	}
}

func TestPool_IndexReassembly(t *testing.T) {
	pool := NewPool(context.Background(), 4)
	pool.Start()

	const count = 12
	for i := 0; i < count; i++ {
		// Uneven durations shuffle completion order.
		pool.Submit(&indexedJob{index: i, duration: time.Duration(count-i) * time.Millisecond})
	}

	seen := make([]bool, count)
	for _, res := range pool.Wait() {
		seen[res.(*indexedResult).index] = true
	}
	for i, ok := range seen {
		if !ok {
			t.Errorf("missing result for index %d", i)
		}
	}
}

func TestPool_JobErrorsSurface(t *testing.T) {
	pool := NewPool(context.Background(), 2)
	pool.Start()

	pool.Submit(&indexedJob{index: 0})
	pool.Submit(&indexedJob{index: 1, shouldErr: true})

	errCount := 0
	for _, res := range pool.Wait() {
		if res.GetError() != nil {
			errCount++
		}
	}
	if errCount != 1 {
		t.Errorf("expected 1 errored result, got %d", errCount)
	}
}

func TestPool_Shutdown(t *testing.T) {
	pool := NewPool(context.Background(), 1)
	pool.Start()

	pool.Submit(&indexedJob{index: 0, duration: 5 * time.Second})
	done := make(chan struct{})
	go func() {
		pool.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Shutdown did not return promptly")
	}
}

func TestLimiter_Unlimited(t *testing.T) {
	l := NewLimiter(0, 0)
	if !l.Allow() {
		t.Error("unlimited limiter should always allow")
	}
	if err := l.Wait(context.Background()); err != nil {
		t.Errorf("unlimited Wait: %v", err)
	}
}

func TestLimiter_Throttles(t *testing.T) {
	l := NewLimiter(10, 1)

	if !l.Allow() {
		t.Fatal("first read should be allowed")
	}
	if l.Allow() {
		t.Error("second immediate read should be throttled at burst 1")
	}
}

func TestLimiter_WaitRespectsContext(t *testing.T) {
	l := NewLimiter(0.001, 1)
	_ = l.Wait(context.Background()) // consume the burst

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := l.Wait(ctx); err == nil {
		t.Error("expected context deadline error while throttled")
	}
}
