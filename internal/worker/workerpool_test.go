package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewWorkerPool(t *testing.T) {
	wp := NewWorkerPool(0)

	assert.Equal(t, 1, wp.numWorkers)
	assert.NotNil(t, wp.pauseCond)
	assert.False(t, wp.Paused())
}

func TestWorkerPool_RunHandlesEveryJob(t *testing.T) {
	wp := NewWorkerPool(3)

	var mu sync.Mutex
	seen := make(map[string]int)

	var running, maxRunning atomic.Int32

	wp.Run(context.Background(), []string{"a", "b", "c", "d", "e", "f", "g"}, func(ctx context.Context, job string) {
		n := running.Add(1)
		for {
			m := maxRunning.Load()
			if n <= m || maxRunning.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		running.Add(-1)

		mu.Lock()
		seen[job]++
		mu.Unlock()
	})

	assert.Len(t, seen, 7)
	for job, n := range seen {
		assert.Equal(t, 1, n, job)
	}
	assert.LessOrEqual(t, maxRunning.Load(), int32(3))
}

func TestWorkerPool_RunNoJobs(t *testing.T) {
	wp := NewWorkerPool(2)

	called := false
	wp.Run(context.Background(), nil, func(context.Context, string) { called = true })

	assert.False(t, called)
}

func TestWorkerPool_PauseFor(t *testing.T) {
	wp := NewWorkerPool(1)

	wp.PauseFor(50 * time.Millisecond)
	assert.True(t, wp.Paused())

	assert.Eventually(t, func() bool { return !wp.Paused() }, time.Second, 5*time.Millisecond)
}

func TestWorkerPool_PauseDelaysJobs(t *testing.T) {
	wp := NewWorkerPool(2)
	wp.PauseFor(80 * time.Millisecond)

	start := time.Now()
	var handled atomic.Int32

	wp.Run(context.Background(), []string{"a", "b"}, func(context.Context, string) {
		handled.Add(1)
	})

	assert.Equal(t, int32(2), handled.Load())
	assert.GreaterOrEqual(t, time.Since(start), 70*time.Millisecond)
}

func TestWorkerPool_CancelWhilePaused(t *testing.T) {
	wp := NewWorkerPool(2)
	wp.PauseFor(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	var handled atomic.Int32

	go func() {
		defer close(done)
		wp.Run(ctx, []string{"a", "b", "c"}, func(context.Context, string) { handled.Add(1) })
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, int32(0), handled.Load())
}

func TestWorkerPool_PauseResumeRace(t *testing.T) {
	wp := NewWorkerPool(4)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			wp.PauseFor(time.Millisecond)
		}()
		go func() {
			defer wg.Done()
			wp.resume()
		}()
	}
	wg.Wait()

	assert.Eventually(t, func() bool { return !wp.Paused() }, time.Second, 5*time.Millisecond)
}
