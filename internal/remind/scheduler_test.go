package remind

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

type fakeTimer struct {
	stopped bool
	fn      func()
}

func (t *fakeTimer) Stop() bool {
	t.stopped = true
	return true
}

type fakeClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
	delays []time.Duration
}

func (f *fakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &fakeTimer{fn: fn}
	f.timers = append(f.timers, t)
	f.delays = append(f.delays, d)
	return t
}

func (f *fakeClock) fireAll() {
	f.mu.Lock()
	pending := append([]*fakeTimer{}, f.timers...)
	f.timers = nil
	f.mu.Unlock()
	for _, timer := range pending {
		if !timer.stopped {
			timer.fn()
		}
	}
}

func TestScheduleFiresOnce(t *testing.T) {
	scheduler := New(zap.NewNop())
	clock := &fakeClock{}
	scheduler.WithClock(clock)

	calls := 0
	scheduler.Schedule(10*time.Second, func() { calls++ })
	if len(clock.delays) != 1 || clock.delays[0] != 10*time.Second {
		t.Fatalf("unexpected delays: %v", clock.delays)
	}

	clock.fireAll()
	clock.fireAll()
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestCancelStopsPendingTask(t *testing.T) {
	scheduler := New(zap.NewNop())
	clock := &fakeClock{}
	scheduler.WithClock(clock)

	calls := 0
	cancel := scheduler.Schedule(time.Minute, func() { calls++ })
	if !cancel() {
		t.Fatalf("expected cancel to stop pending task")
	}
	clock.fireAll()
	if calls != 0 {
		t.Fatalf("cancelled task fired")
	}
}

func TestCancelAfterFireReportsFalse(t *testing.T) {
	scheduler := New(zap.NewNop())
	clock := &fakeClock{}
	scheduler.WithClock(clock)

	cancel := scheduler.Schedule(0, func() {})
	clock.fireAll()
	if cancel() {
		t.Fatalf("expected cancel to report false after firing")
	}
}
