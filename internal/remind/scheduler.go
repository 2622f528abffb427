// Package remind schedules one-shot deferred tasks. Reminders live only in
// process memory; nothing survives a restart.
package remind

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type Timer interface {
	Stop() bool
}

type realClock struct{}

type realTimer struct{ t *time.Timer }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return realTimer{t: time.AfterFunc(d, f)}
}

func (t realTimer) Stop() bool { return t.t.Stop() }

// Cancel withdraws a scheduled task. It reports whether the task was stopped
// before firing. No command currently exposes cancellation; the handle exists
// so the capability is designed in rather than bolted on later.
type Cancel func() bool

type Scheduler struct {
	clock  Clock
	logger *zap.Logger
}

func New(logger *zap.Logger) *Scheduler {
	return &Scheduler{clock: realClock{}, logger: logger}
}

func (s *Scheduler) WithClock(clock Clock) {
	s.clock = clock
}

// Schedule arranges exactly one invocation of task after delay. A zero delay
// fires on the next timer tick. The task itself is responsible for swallowing
// delivery failures.
func (s *Scheduler) Schedule(delay time.Duration, task func()) Cancel {
	var fired atomic.Bool
	timer := s.clock.AfterFunc(delay, func() {
		fired.Store(true)
		task()
	})
	s.logger.Debug("task scheduled", zap.Duration("delay", delay))
	return func() bool {
		if fired.Load() {
			return false
		}
		return timer.Stop()
	}
}
