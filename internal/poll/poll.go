package poll

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Task is one poll cycle: fetch and apply. A nil error keeps the runner
// on its base interval; an error moves it onto the backoff schedule.
type Task func(ctx context.Context) error

type Options struct {
	// InitialBackoff is the first delay after a failure. Defaults to the
	// base interval.
	InitialBackoff time.Duration
	// MaxBackoff caps the failure delay. Defaults to 10x the base
	// interval.
	MaxBackoff time.Duration
}

// Runner supervises a recurring fetch: fixed interval while healthy,
// exponential backoff with jitter while the backend is failing, reset on
// the first success. Pause parks the loop (the tab-hidden analog) until
// Resume; cancelling the context stops it for good.
type Runner struct {
	name string
	base time.Duration
	task Task
	bo   *backoff.ExponentialBackOff

	mu     sync.Mutex
	paused bool
	resume chan struct{}
}

func NewRunner(name string, base time.Duration, task Task, options Options) *Runner {
	initial := options.InitialBackoff
	if initial <= 0 {
		initial = base
	}
	max := options.MaxBackoff
	if max <= 0 {
		max = 10 * base
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = initial
	bo.MaxInterval = max
	bo.Reset()

	return &Runner{name: name, base: base, task: task, bo: bo}
}

// Run polls until ctx is cancelled. The first cycle fires immediately,
// matching a page fetching on mount before its interval kicks in.
func (r *Runner) Run(ctx context.Context) error {
	for {
		if gate := r.gate(); gate != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-gate:
			}
		}

		err := r.task(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		var delay time.Duration
		if err != nil {
			delay = r.bo.NextBackOff()
			log.Printf("poll %s error, retrying in %s: %v", r.name, delay.Round(time.Millisecond), err)
		} else {
			r.bo.Reset()
			delay = r.base
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Pause parks the loop after the current cycle. Idempotent.
func (r *Runner) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.paused {
		r.paused = true
		r.resume = make(chan struct{})
	}
}

// Resume releases a paused loop. The next cycle fires right away, the
// way a page refetches on regaining focus.
func (r *Runner) Resume() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.paused {
		r.paused = false
		close(r.resume)
	}
}

func (r *Runner) gate() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.paused {
		return r.resume
	}
	return nil
}
