package timer

import (
	"sync"
	"time"
)

// Scheduler runs a function once after a delay and hands back a Handle the
// caller can cancel. The booking workflow uses it for the deferred return to
// the room list; cancelling an obsolete handle is what prevents a stale
// redirect from firing after the flow was torn down or superseded.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Handle
}

type Handle interface {
	// Cancel stops the pending action. Cancelling an already-fired or
	// already-cancelled handle is a no-op.
	Cancel()
}

type realScheduler struct{}

func NewScheduler() Scheduler {
	return &realScheduler{}
}

func (s *realScheduler) Schedule(d time.Duration, fn func()) Handle {
	return &realHandle{t: time.AfterFunc(d, fn)}
}

type realHandle struct {
	t *time.Timer
}

func (h *realHandle) Cancel() {
	h.t.Stop()
}

// MockScheduler records scheduled actions and fires them only on demand.
type MockScheduler struct {
	mu      sync.Mutex
	pending []*MockHandle
}

func NewMockScheduler() *MockScheduler {
	return &MockScheduler{}
}

func (s *MockScheduler) Schedule(d time.Duration, fn func()) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := &MockHandle{Delay: d, fn: fn}
	s.pending = append(s.pending, h)
	return h
}

// Pending returns the handles that have neither fired nor been cancelled.
func (s *MockScheduler) Pending() []*MockHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*MockHandle
	for _, h := range s.pending {
		if !h.cancelled && !h.fired {
			out = append(out, h)
		}
	}
	return out
}

// FireAll runs every pending action as if its delay had elapsed.
func (s *MockScheduler) FireAll() {
	for _, h := range s.Pending() {
		h.Fire()
	}
}

type MockHandle struct {
	Delay     time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

func (h *MockHandle) Cancel() {
	h.cancelled = true
}

func (h *MockHandle) Cancelled() bool {
	return h.cancelled
}

func (h *MockHandle) Fire() {
	if h.cancelled || h.fired {
		return
	}
	h.fired = true
	h.fn()
}
