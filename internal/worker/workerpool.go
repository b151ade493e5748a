package worker

import (
	"context"
	"sync"
	"time"
)

// WorkerPool runs jobs on a fixed number of goroutines. The whole pool can be
// paused, e.g. while the upstream is rate limiting us.
type WorkerPool struct {
	numWorkers int

	pauseMu   sync.Mutex
	pauseCond *sync.Cond
	paused    bool
}

func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers < 1 {
		numWorkers = 1
	}

	wp := &WorkerPool{numWorkers: numWorkers}
	wp.pauseCond = sync.NewCond(&wp.pauseMu)

	return wp
}

// Run feeds jobs to the workers and returns when every job is handled or
// ctx is done. Workers check the pause flag before each job.
func (wp *WorkerPool) Run(ctx context.Context, jobs []string, handle func(ctx context.Context, job string)) {
	if len(jobs) == 0 {
		return
	}

	queue := make(chan string, wp.numWorkers)

	stop := context.AfterFunc(ctx, wp.wakeAll)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(wp.numWorkers)
	for i := 0; i < wp.numWorkers; i++ {
		go func() {
			defer wg.Done()
			for job := range queue {
				// Дочитываем очередь после отмены, чтобы не блокировать отправителя
				if !wp.waitWhilePaused(ctx) {
					continue
				}
				handle(ctx, job)
			}
		}()
	}

feed:
	for _, job := range jobs {
		select {
		case queue <- job:
		case <-ctx.Done():
			break feed
		}
	}
	close(queue)

	wg.Wait()
}

// waitWhilePaused blocks until the pool resumes. It returns false once ctx
// is done.
func (wp *WorkerPool) waitWhilePaused(ctx context.Context) bool {
	wp.pauseMu.Lock()
	defer wp.pauseMu.Unlock()

	for wp.paused && ctx.Err() == nil {
		wp.pauseCond.Wait() // блокируемся до resume
	}

	return ctx.Err() == nil
}

// PauseFor stops workers from picking up jobs for duration. A pause already
// in progress is not extended.
func (wp *WorkerPool) PauseFor(duration time.Duration) {
	wp.pauseMu.Lock()
	defer wp.pauseMu.Unlock()

	if wp.paused {
		return
	}

	wp.paused = true

	time.AfterFunc(duration, wp.resume)
}

func (wp *WorkerPool) Paused() bool {
	wp.pauseMu.Lock()
	defer wp.pauseMu.Unlock()

	return wp.paused
}

func (wp *WorkerPool) resume() {
	wp.pauseMu.Lock()
	defer wp.pauseMu.Unlock()

	if !wp.paused {
		return
	}

	wp.paused = false
	wp.pauseCond.Broadcast()
}

func (wp *WorkerPool) wakeAll() {
	wp.pauseMu.Lock()
	defer wp.pauseMu.Unlock()

	wp.pauseCond.Broadcast()
}
